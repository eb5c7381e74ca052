package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/greencareers/internal/client/client"
	"github.com/dmitrijs2005/greencareers/internal/client/config"
	pb "github.com/dmitrijs2005/greencareers/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
)

type fakeClient struct {
	token       string
	closed      bool
	signupEmail string
	signupName  string
	loginPass   string
	profile     *pb.SubmitProfileRequest
	chatMsg     string
	adviceFor   string
	err         error
}

func (f *fakeClient) Signup(_ context.Context, email, _, name string) (string, error) {
	f.signupEmail, f.signupName = email, name
	return "u-1", f.err
}
func (f *fakeClient) Login(_ context.Context, _, password string) (string, error) {
	f.loginPass = password
	if f.err != nil {
		return "", f.err
	}
	return "tok-xyz", nil
}
func (f *fakeClient) SetAccessToken(t string) { f.token = t }
func (f *fakeClient) Me(context.Context) (*pb.UserResponse, error) {
	if f.token == "" {
		return nil, client.ErrUnauthorized
	}
	if f.err != nil {
		return nil, f.err
	}
	return &pb.UserResponse{UserId: "u-1", Email: "a@b.com"}, nil
}
func (f *fakeClient) SubmitProfile(_ context.Context, r *pb.SubmitProfileRequest) (string, error) {
	f.profile = r
	return "p-1", f.err
}
func (f *fakeClient) Risk(_ context.Context, id string) (*pb.RiskResponse, error) {
	f.adviceFor = id
	return &pb.RiskResponse{UserId: id, JobTitle: "Cashier", RiskScore: 75}, f.err
}
func (f *fakeClient) GreenJobs(_ context.Context, id string) (*pb.GreenJobsResponse, error) {
	f.adviceFor = id
	return &pb.GreenJobsResponse{Jobs: []*pb.GreenJob{{Title: "Solar Panel Installer"}}}, f.err
}
func (f *fakeClient) ReskillingCourses(_ context.Context, id string) (*pb.ReskillingCoursesResponse, error) {
	f.adviceFor = id
	return &pb.ReskillingCoursesResponse{}, f.err
}
func (f *fakeClient) SideHustles(_ context.Context, id string) (*pb.SideHustlesResponse, error) {
	f.adviceFor = id
	return &pb.SideHustlesResponse{}, f.err
}
func (f *fakeClient) Chat(_ context.Context, _, msg string) (string, error) {
	f.chatMsg = msg
	return "reply", f.err
}
func (f *fakeClient) Close() error { f.closed = true; return nil }

func newTestApp(t *testing.T, input string) (*App, *fakeClient, *bytes.Buffer) {
	t.Helper()
	fc := &fakeClient{}
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.TokenFile = filepath.Join(t.TempDir(), "token")
	return &App{config: cfg, client: fc, prompt: NewPrompter(strings.NewReader(input), out), out: out}, fc, out
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
}

func TestRun_NoArgs(t *testing.T) {
	app, fc, out := newTestApp(t, "")
	err := app.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out.String(), "commands:")
	assert.True(t, fc.closed)
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, out := newTestApp(t, "")
	err := app.Run(context.Background(), []string{"dance"})
	assert.ErrorIs(t, err, ErrUsage)
	assert.Contains(t, out.String(), `unknown command "dance"`)
}

func TestRun_Signup(t *testing.T) {
	stubPassword(t, "secret1")
	app, fc, out := newTestApp(t, "Ann Lee\n")

	require.NoError(t, app.Run(context.Background(), []string{"signup", "a@b.com"}))
	assert.Equal(t, "a@b.com", fc.signupEmail)
	assert.Equal(t, "Ann Lee", fc.signupName)
	assert.Contains(t, out.String(), "user id: u-1")
}

func TestRun_LoginStoresTokenThenMe(t *testing.T) {
	stubPassword(t, "secret1")
	app, fc, _ := newTestApp(t, "a@b.com\n")

	require.NoError(t, app.Run(context.Background(), []string{"login"}))
	assert.Equal(t, "secret1", fc.loginPass)

	b, err := os.ReadFile(app.config.TokenFile)
	require.NoError(t, err)
	assert.Equal(t, "tok-xyz\n", string(b))

	info, err := os.Stat(app.config.TokenFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	next, fc2, out := newTestApp(t, "")
	next.config.TokenFile = app.config.TokenFile
	require.NoError(t, next.Run(context.Background(), []string{"me"}))
	assert.Equal(t, "tok-xyz", fc2.token)

	var user pb.UserResponse
	require.NoError(t, protojson.Unmarshal(out.Bytes(), &user))
	assert.Equal(t, "a@b.com", user.GetEmail())
}

func TestRun_ExpiredSessionClearsToken(t *testing.T) {
	app, fc, out := newTestApp(t, "")
	require.NoError(t, os.WriteFile(app.config.TokenFile, []byte("stale\n"), 0o600))
	fc.err = client.ErrSessionExpired

	err := app.Run(context.Background(), []string{"me"})
	assert.ErrorIs(t, err, client.ErrSessionExpired)
	assert.Contains(t, out.String(), "run login again")

	_, statErr := os.Stat(app.config.TokenFile)
	assert.ErrorIs(t, statErr, os.ErrNotExist)

	next, fc2, _ := newTestApp(t, "")
	next.config.TokenFile = app.config.TokenFile
	assert.ErrorIs(t, next.Run(context.Background(), []string{"me"}), client.ErrUnauthorized)
	assert.Empty(t, fc2.token)
}

func TestRun_MeWithoutToken(t *testing.T) {
	app, _, _ := newTestApp(t, "")
	err := app.Run(context.Background(), []string{"me"})
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestRun_Profile(t *testing.T) {
	input := "Cashier\n\neco, gardening\nfirst line\nsecond line\n\n"
	app, fc, out := newTestApp(t, input)

	require.NoError(t, app.Run(context.Background(), []string{"profile"}))
	require.NotNil(t, fc.profile)
	assert.Equal(t, "", fc.profile.GetUserId())
	assert.Equal(t, "Cashier", fc.profile.JobTitle)
	assert.Equal(t, "", fc.profile.Experience)
	assert.Equal(t, "eco, gardening", fc.profile.Interests)
	assert.Equal(t, "first line\nsecond line", fc.profile.ResumeText)
	assert.Contains(t, out.String(), "user id: p-1")
}

func TestRun_ProfileUpdate(t *testing.T) {
	app, fc, _ := newTestApp(t, "Retail Associate\n\n\n\n")

	require.NoError(t, app.Run(context.Background(), []string{"profile", "p-1"}))
	assert.Equal(t, "p-1", fc.profile.GetUserId())
	assert.Equal(t, "Retail Associate", fc.profile.JobTitle)
}

func TestRun_Advice(t *testing.T) {
	for _, cmd := range []string{"risk", "jobs", "courses", "hustles"} {
		t.Run(cmd, func(t *testing.T) {
			app, fc, _ := newTestApp(t, "")
			require.NoError(t, app.Run(context.Background(), []string{cmd, "u-9"}))
			assert.Equal(t, "u-9", fc.adviceFor)
		})
	}

	app, _, out := newTestApp(t, "")
	require.NoError(t, app.Run(context.Background(), []string{"risk", "u-9"}))
	var risk pb.RiskResponse
	require.NoError(t, protojson.Unmarshal(out.Bytes(), &risk))
	assert.Equal(t, int32(75), risk.GetRiskScore())
	assert.Equal(t, "u-9", risk.GetUserId())

	app, _, _ = newTestApp(t, "")
	assert.ErrorIs(t, app.Run(context.Background(), []string{"jobs"}), ErrUsage)
}

func TestRun_Chat(t *testing.T) {
	app, fc, out := newTestApp(t, "")
	require.NoError(t, app.Run(context.Background(), []string{"chat", "u-1", "what", "next?"}))
	assert.Equal(t, "what next?", fc.chatMsg)
	assert.Contains(t, out.String(), "reply")

	app, _, _ = newTestApp(t, "")
	assert.ErrorIs(t, app.Run(context.Background(), []string{"chat", "u-1"}), ErrUsage)
}

func TestLoadToken_Missing(t *testing.T) {
	tok, err := loadToken(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, tok)
}
