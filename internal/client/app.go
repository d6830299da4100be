package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/service"
	"github.com/urfave/cli/v3"
)

// PasswordEnv is read when --password is omitted, before prompting.
const PasswordEnv = "LEGACY_KEEPER_PASSWORD"

var errEmptyPassword = errors.New("password must not be empty")

type App struct {
	services *service.ClientServices

	in  *bufio.Reader
	out io.Writer

	version string
	logger  *logger.Logger
}

// NewApp builds the CLI around services. Prompts read from in; results are
// written to out.
func NewApp(services *service.ClientServices, in io.Reader, out io.Writer, version string, logger *logger.Logger) *App {
	return &App{
		services: services,
		in:       bufio.NewReader(in),
		out:      out,
		version:  version,
		logger:   logger,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	err := a.command().Run(ctx, args)
	if err != nil {
		a.logger.Err(err).Str("command", commandName(args)).Msg("command failed")
	}
	return err
}

// password returns --password, then PasswordEnv (wired as a flag source),
// then a line read from the prompt.
func (a *App) password(cmd *cli.Command) (string, error) {
	if p := cmd.String("password"); p != "" {
		return p, nil
	}

	if _, err := fmt.Fprint(a.out, "Password: "); err != nil {
		return "", err
	}
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}

	p := strings.TrimRight(line, "\r\n")
	if p == "" {
		return "", errEmptyPassword
	}
	return p, nil
}

// unlockVault fills the keyring for the vault commands: through biometric
// login when --sample is given, otherwise from the password.
func (a *App) unlockVault(ctx context.Context, cmd *cli.Command) error {
	if sample := cmd.String("sample"); sample != "" {
		_, err := a.services.AuthService.BiometricLogin(ctx, cmd.String("email"), sample)
		return err
	}

	password, err := a.password(cmd)
	if err != nil {
		return err
	}
	return a.services.VaultService.Unlock(ctx, cmd.String("email"), password)
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func commandName(args []string) string {
	if len(args) < 2 {
		return ""
	}
	return args[1]
}
