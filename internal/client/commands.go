package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-legacy-keeper/models"
	"github.com/urfave/cli/v3"
)

const sampleEnv = "LEGACY_KEEPER_BIOMETRIC_SAMPLE"

func emailFlag() cli.Flag {
	return &cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true, Usage: "account email"}
}

func passwordFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "password",
		Aliases: []string{"p"},
		Usage:   "master password (prompted when omitted)",
		Sources: cli.EnvVars(PasswordEnv),
	}
}

func sampleFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "sample",
		Required: true,
		Usage:    "biometric template captured on this device",
		Sources:  cli.EnvVars(sampleEnv),
	}
}

// unlockSampleFlag lets vault commands unlock with biometric login instead
// of the password. It has no environment source so a stored sample never
// silently replaces --password.
func unlockSampleFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "sample",
		Usage: "unlock with a biometric sample enrolled on this device instead of the password",
	}
}

// vaultFlags are the unlock flags shared by every vault command.
func vaultFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{emailFlag(), passwordFlag(), unlockSampleFlag()}, extra...)
}

func idFlag() cli.Flag {
	return &cli.StringFlag{Name: "id", Required: true, Usage: "record ID"}
}

func (a *App) command() *cli.Command {
	return &cli.Command{
		Name:      "legacy-keeper",
		Usage:     "zero-knowledge vault for digital legacy records",
		Version:   a.version,
		Writer:    a.out,
		ErrWriter: a.out,
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create an account on the server",
				Flags: []cli.Flag{
					emailFlag(), passwordFlag(),
					&cli.StringFlag{Name: "first-name", Required: true},
					&cli.StringFlag{Name: "last-name", Required: true},
				},
				Action: a.register,
			},
			{
				Name:   "login",
				Usage:  "Check credentials against the server",
				Flags:  []cli.Flag{emailFlag(), passwordFlag()},
				Action: a.login,
			},
			{
				Name:   "biometric-login",
				Usage:  "Log in with a biometric sample enrolled on this device",
				Flags:  []cli.Flag{emailFlag(), sampleFlag()},
				Action: a.biometricLogin,
			},
			{
				Name:   "enroll-biometric",
				Usage:  "Enable biometric login on this device",
				Flags:  []cli.Flag{emailFlag(), passwordFlag(), sampleFlag()},
				Action: a.enrollBiometric,
			},
			{
				Name:   "logout",
				Usage:  "Forget this device's biometric secret for the account",
				Flags:  []cli.Flag{emailFlag()},
				Action: a.logout,
			},
			{
				Name:  "add",
				Usage: "Encrypt and store a record in the local vault",
				// read per command; field values may contain commas
				DisableSliceFlagSeparator: true,
				Flags: vaultFlags(
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Required: true, Usage: "account, document, heir or loan"},
					&cli.StringSliceFlag{Name: "field", Aliases: []string{"f"}, Required: true, Usage: "name=value, repeatable"},
					&cli.StringFlag{Name: "category"},
					&cli.FloatFlag{Name: "value", Usage: "estimated value"},
					&cli.StringFlag{Name: "file", Usage: "file to encrypt into a document record"},
				),
				Action: a.addRecord,
			},
			{
				Name:  "get",
				Usage: "Decrypt one record",
				Flags: vaultFlags(idFlag(),
					&cli.StringFlag{Name: "out", Usage: "write the decrypted attachment to this path"},
				),
				Action: a.getRecord,
			},
			{
				Name:   "list",
				Usage:  "Decrypt every record",
				Flags:  vaultFlags(),
				Action: a.listRecords,
			},
			{
				Name:  "search",
				Usage: "Find records by words they contain",
				Flags: vaultFlags(
					&cli.StringFlag{Name: "term", Required: true},
				),
				Action: a.search,
			},
			{
				Name:   "delete",
				Usage:  "Remove a record from the local vault",
				Flags:  vaultFlags(idFlag()),
				Action: a.deleteRecord,
			},
		},
	}
}

func (a *App) register(ctx context.Context, cmd *cli.Command) error {
	password, err := a.password(cmd)
	if err != nil {
		return err
	}

	info, err := a.services.AuthService.Register(ctx, models.RegisterRequest{
		Email:     cmd.String("email"),
		Password:  password,
		FirstName: cmd.String("first-name"),
		LastName:  cmd.String("last-name"),
	})
	if err != nil {
		return err
	}
	return a.printJSON(info)
}

func (a *App) login(ctx context.Context, cmd *cli.Command) error {
	password, err := a.password(cmd)
	if err != nil {
		return err
	}

	info, err := a.services.AuthService.Login(ctx, cmd.String("email"), password)
	if err != nil {
		return err
	}
	return a.printJSON(info)
}

func (a *App) biometricLogin(ctx context.Context, cmd *cli.Command) error {
	info, err := a.services.AuthService.BiometricLogin(ctx, cmd.String("email"), cmd.String("sample"))
	if err != nil {
		return err
	}
	return a.printJSON(info)
}

func (a *App) enrollBiometric(ctx context.Context, cmd *cli.Command) error {
	password, err := a.password(cmd)
	if err != nil {
		return err
	}

	if _, err := a.services.AuthService.Login(ctx, cmd.String("email"), password); err != nil {
		return err
	}
	if err := a.services.AuthService.EnrollBiometric(ctx, cmd.String("sample")); err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, "biometric login enabled on this device")
	return err
}

func (a *App) logout(ctx context.Context, cmd *cli.Command) error {
	return a.services.AuthService.Logout(ctx, cmd.String("email"))
}

func (a *App) addRecord(ctx context.Context, cmd *cli.Command) error {
	fields, err := parseFields(cmd.StringSlice("field"))
	if err != nil {
		return err
	}

	var attachment []byte
	if path := cmd.String("file"); path != "" {
		attachment, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading attachment: %w", err)
		}
		if _, ok := fields["file_name"]; !ok {
			fields["file_name"] = filepath.Base(path)
		}
	}

	if err := a.unlockVault(ctx, cmd); err != nil {
		return err
	}

	id, err := a.services.VaultService.AddRecord(ctx, models.Record{
		Type:   models.RecordType(cmd.String("type")),
		Fields: fields,
		Metadata: models.RecordMetadata{
			Category:       cmd.String("category"),
			EstimatedValue: cmd.Float("value"),
		},
		Attachment: attachment,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, id)
	return err
}

func (a *App) getRecord(ctx context.Context, cmd *cli.Command) error {
	if err := a.unlockVault(ctx, cmd); err != nil {
		return err
	}

	record, err := a.services.VaultService.GetRecord(ctx, cmd.String("id"))
	if err != nil {
		return err
	}

	if out := cmd.String("out"); out != "" {
		data, err := a.services.VaultService.GetAttachment(ctx, record.ID)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0o600); err != nil {
			return fmt.Errorf("writing attachment: %w", err)
		}
	}
	return a.printJSON(record)
}

func (a *App) listRecords(ctx context.Context, cmd *cli.Command) error {
	if err := a.unlockVault(ctx, cmd); err != nil {
		return err
	}

	records, err := a.services.VaultService.ListRecords(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(records)
}

func (a *App) search(ctx context.Context, cmd *cli.Command) error {
	if err := a.unlockVault(ctx, cmd); err != nil {
		return err
	}

	records, err := a.services.VaultService.Search(ctx, cmd.String("term"))
	if err != nil {
		return err
	}
	return a.printJSON(records)
}

func (a *App) deleteRecord(ctx context.Context, cmd *cli.Command) error {
	if err := a.unlockVault(ctx, cmd); err != nil {
		return err
	}
	return a.services.VaultService.DeleteRecord(ctx, cmd.String("id"))
}

// parseFields turns repeated name=value flags into a field map. The value
// may itself contain '='.
func parseFields(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("field %q: expected name=value", pair)
		}
		fields[name] = value
	}
	return fields, nil
}
