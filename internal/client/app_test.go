package client

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-legacy-keeper/internal/crypto"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/service"
	"github.com/MKhiriev/go-legacy-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth records the calls the CLI makes.
type fakeAuth struct {
	keyring  *service.Keyring
	calls    []string
	register models.RegisterRequest
	password string
	sample   string
	err      error
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (models.UserInfo, error) {
	f.calls = append(f.calls, "register")
	f.register = req
	return models.UserInfo{ID: 42, Email: req.Email}, f.err
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (models.UserInfo, error) {
	f.calls = append(f.calls, "login")
	f.password = password
	return models.UserInfo{ID: 42, Email: email}, f.err
}

func (f *fakeAuth) BiometricLogin(_ context.Context, email, sample string) (models.UserInfo, error) {
	f.calls = append(f.calls, "biometric-login")
	f.sample = sample
	if f.err != nil {
		return models.UserInfo{}, f.err
	}
	f.keyring.Unlock(email, 42, crypto.MasterKey{1, 2, 3, 4})
	return models.UserInfo{ID: 42, Email: email}, nil
}

func (f *fakeAuth) EnrollBiometric(_ context.Context, sample string) error {
	f.calls = append(f.calls, "enroll")
	f.sample = sample
	return f.err
}

func (f *fakeAuth) Logout(_ context.Context, email string) error {
	f.calls = append(f.calls, "logout:"+email)
	return f.err
}

// fakeVault keeps records in memory and checks one fixed password. It also
// counts as unlocked once the shared keyring holds a key.
type fakeVault struct {
	keyring    *service.Keyring
	password   string
	unlocks    int
	unlocked   bool
	added      []models.Record
	attachment []byte
}

func (f *fakeVault) Unlock(_ context.Context, _, password string) error {
	f.unlocks++
	if password != f.password {
		return service.ErrInvalidCredentials
	}
	f.unlocked = true
	return nil
}

func (f *fakeVault) isUnlocked() bool {
	return f.unlocked || f.keyring.IsUnlocked()
}

func (f *fakeVault) AddRecord(_ context.Context, record models.Record) (string, error) {
	if !f.isUnlocked() {
		return "", service.ErrVaultLocked
	}
	f.added = append(f.added, record)
	return "rec-1", nil
}

func (f *fakeVault) GetAttachment(_ context.Context, _ string) ([]byte, error) {
	if f.attachment == nil {
		return nil, service.ErrNoAttachment
	}
	return f.attachment, nil
}

func (f *fakeVault) GetRecord(_ context.Context, id string) (models.DecryptedRecord, error) {
	return models.DecryptedRecord{ID: id, Type: models.Account,
		Fields: map[string]models.FieldValue{"institution": {Value: "National Bank"}}}, nil
}

func (f *fakeVault) ListRecords(ctx context.Context) ([]models.DecryptedRecord, error) {
	if !f.isUnlocked() {
		return nil, service.ErrVaultLocked
	}
	r, _ := f.GetRecord(ctx, "rec-1")
	return []models.DecryptedRecord{r}, nil
}

func (f *fakeVault) Search(ctx context.Context, term string) ([]models.DecryptedRecord, error) {
	if term != "national" {
		return nil, nil
	}
	return f.ListRecords(ctx)
}

func (f *fakeVault) DeleteRecord(context.Context, string) error { return nil }

func newTestApp(stdin string) (*App, *fakeAuth, *fakeVault, *bytes.Buffer) {
	keyring := service.NewKeyring()
	auth := &fakeAuth{keyring: keyring}
	vault := &fakeVault{keyring: keyring, password: "correct horse battery"}
	out := &bytes.Buffer{}

	services := &service.ClientServices{
		Keyring:      keyring,
		AuthService:  auth,
		VaultService: vault,
	}
	return NewApp(services, strings.NewReader(stdin), out, "test", logger.Nop()), auth, vault, out
}

func TestApp_Register(t *testing.T) {
	app, auth, _, out := newTestApp("")

	err := app.Run(context.Background(), []string{"legacy-keeper", "register",
		"--email", "jane@example.com", "--password", "correct horse battery",
		"--first-name", "Jane", "--last-name", "Doe"})
	require.NoError(t, err)

	assert.Equal(t, models.RegisterRequest{
		Email:     "jane@example.com",
		Password:  "correct horse battery",
		FirstName: "Jane",
		LastName:  "Doe",
	}, auth.register)

	var info models.UserInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, int64(42), info.ID)
}

func TestApp_PasswordSources(t *testing.T) {
	t.Run("prompt", func(t *testing.T) {
		app, auth, _, out := newTestApp("from-prompt\n")

		require.NoError(t, app.Run(context.Background(), []string{"legacy-keeper", "login", "--email", "jane@example.com"}))
		assert.Equal(t, "from-prompt", auth.password)
		assert.Contains(t, out.String(), "Password: ")
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(PasswordEnv, "from-env")
		app, auth, _, _ := newTestApp("")

		require.NoError(t, app.Run(context.Background(), []string{"legacy-keeper", "login", "--email", "jane@example.com"}))
		assert.Equal(t, "from-env", auth.password)
	})

	t.Run("empty prompt", func(t *testing.T) {
		app, auth, _, _ := newTestApp("\n")

		err := app.Run(context.Background(), []string{"legacy-keeper", "login", "--email", "jane@example.com"})
		require.ErrorIs(t, err, errEmptyPassword)
		assert.Empty(t, auth.calls)
	})
}

func TestApp_EnrollBiometricLogsInFirst(t *testing.T) {
	app, auth, _, out := newTestApp("")

	err := app.Run(context.Background(), []string{"legacy-keeper", "enroll-biometric",
		"--email", "jane@example.com", "--password", "pw", "--sample", "template-1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"login", "enroll"}, auth.calls)
	assert.Equal(t, "template-1", auth.sample)
	assert.Contains(t, out.String(), "biometric login enabled")
}

func TestApp_BiometricLoginAndLogout(t *testing.T) {
	app, auth, _, _ := newTestApp("")

	require.NoError(t, app.Run(context.Background(), []string{"legacy-keeper", "biometric-login",
		"--email", "jane@example.com", "--sample", "template-1"}))
	require.NoError(t, app.Run(context.Background(), []string{"legacy-keeper", "logout", "--email", "jane@example.com"}))

	assert.Equal(t, []string{"biometric-login", "logout:jane@example.com"}, auth.calls)
}

func TestApp_AddRecord(t *testing.T) {
	app, _, vault, out := newTestApp("")

	err := app.Run(context.Background(), []string{"legacy-keeper", "add",
		"--email", "jane@example.com", "--password", "correct horse battery",
		"--type", "account",
		"--field", "institution=National Bank, Main St.",
		"--field", "note=a=b",
		"--category", "banking", "--value", "1500.5"})
	require.NoError(t, err)

	require.Len(t, vault.added, 1)
	assert.Equal(t, models.Record{
		Type:   models.Account,
		Fields: map[string]string{"institution": "National Bank, Main St.", "note": "a=b"},
		Metadata: models.RecordMetadata{
			Category:       "banking",
			EstimatedValue: 1500.5,
		},
	}, vault.added[0])
	assert.Equal(t, "rec-1\n", out.String())
}

func TestApp_AddDocumentWithFile(t *testing.T) {
	app, _, vault, _ := newTestApp("")
	path := filepath.Join(t.TempDir(), "will-2026.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7 will"), 0o600))

	err := app.Run(context.Background(), []string{"legacy-keeper", "add",
		"--email", "jane@example.com", "--password", "correct horse battery",
		"--type", "document", "--field", "title=Last will", "--file", path})
	require.NoError(t, err)

	require.Len(t, vault.added, 1)
	assert.Equal(t, []byte("%PDF-1.7 will"), vault.added[0].Attachment)
	assert.Equal(t, "will-2026.pdf", vault.added[0].Fields["file_name"])

	err = app.Run(context.Background(), []string{"legacy-keeper", "add",
		"--email", "jane@example.com", "--password", "correct horse battery",
		"--type", "document", "--field", "title=Deed", "--file", filepath.Join(t.TempDir(), "missing.pdf")})
	require.Error(t, err)
	assert.Len(t, vault.added, 1)
}

func TestApp_GetWritesAttachment(t *testing.T) {
	app, _, vault, out := newTestApp("")
	vault.attachment = []byte("%PDF-1.7 deed")
	path := filepath.Join(t.TempDir(), "deed.pdf")

	require.NoError(t, app.Run(context.Background(), []string{"legacy-keeper", "get",
		"--email", "jane@example.com", "--password", "correct horse battery",
		"--id", "rec-1", "--out", path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, vault.attachment, data)

	var record models.DecryptedRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "rec-1", record.ID)
}

func TestApp_VaultCommandsUnlockWithSample(t *testing.T) {
	app, auth, vault, out := newTestApp("")

	require.NoError(t, app.Run(context.Background(), []string{"legacy-keeper", "list",
		"--email", "jane@example.com", "--sample", "template-1"}))

	assert.Equal(t, []string{"biometric-login"}, auth.calls)
	assert.Equal(t, "template-1", auth.sample)
	assert.Zero(t, vault.unlocks)
	assert.NotContains(t, out.String(), "Password: ")

	var records []models.DecryptedRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	assert.Len(t, records, 1)
}

func TestApp_VaultCommandsSampleRejected(t *testing.T) {
	app, auth, vault, _ := newTestApp("")
	auth.err = service.ErrInvalidCredentials

	err := app.Run(context.Background(), []string{"legacy-keeper", "add",
		"--email", "jane@example.com", "--sample", "someone-else",
		"--type", "account", "--field", "institution=x"})

	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Empty(t, vault.added)
}

func TestApp_VaultCommandsRequireCorrectPassword(t *testing.T) {
	app, _, vault, _ := newTestApp("")

	err := app.Run(context.Background(), []string{"legacy-keeper", "add",
		"--email", "jane@example.com", "--password", "wrong",
		"--type", "account", "--field", "a=b"})

	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Empty(t, vault.added)
}

func TestApp_SearchPrintsMatches(t *testing.T) {
	app, _, _, out := newTestApp("")

	require.NoError(t, app.Run(context.Background(), []string{"legacy-keeper", "search",
		"--email", "jane@example.com", "--password", "correct horse battery", "--term", "national"}))

	var records []models.DecryptedRecord
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "National Bank", records[0].Fields["institution"].Value)
}

func TestParseFields(t *testing.T) {
	fields, err := parseFields([]string{"a=1", " b =x=y", "c="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "x=y", "c": ""}, fields)

	for _, bad := range []string{"novalue", "=value"} {
		_, err := parseFields([]string{bad})
		assert.Error(t, err, bad)
	}
}
