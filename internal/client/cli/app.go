package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/greencareers/internal/client/client"
	"github.com/dmitrijs2005/greencareers/internal/client/config"
	"github.com/dmitrijs2005/greencareers/internal/common"
	pb "github.com/dmitrijs2005/greencareers/internal/proto"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var ErrUsage = errors.New("usage error")

// CareerClient is the subset of client.GRPCClient used by the CLI.
type CareerClient interface {
	Signup(ctx context.Context, email, password, displayName string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	SetAccessToken(token string)
	Me(ctx context.Context) (*pb.UserResponse, error)
	SubmitProfile(ctx context.Context, req *pb.SubmitProfileRequest) (string, error)
	Risk(ctx context.Context, userID string) (*pb.RiskResponse, error)
	GreenJobs(ctx context.Context, userID string) (*pb.GreenJobsResponse, error)
	ReskillingCourses(ctx context.Context, userID string) (*pb.ReskillingCoursesResponse, error)
	SideHustles(ctx context.Context, userID string) (*pb.SideHustlesResponse, error)
	Chat(ctx context.Context, userID, message string) (string, error)
	Close() error
}

type App struct {
	config *config.Config
	client CareerClient
	prompt *Prompter
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr, c.APIKey)
	if err != nil {
		return nil, err
	}
	return &App{config: c, client: apiClient, prompt: NewPrompter(os.Stdin, os.Stdout), out: os.Stdout}, nil
}

// Run executes the subcommand in args[0] with the remaining positional args.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.client.Close()

	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}

	token, err := loadToken(a.config.TokenFile)
	if err != nil {
		return err
	}
	a.client.SetAccessToken(token)

	err = a.dispatch(ctx, args[0], args[1:])
	if errors.Is(err, client.ErrSessionExpired) {
		if rmErr := removeToken(a.config.TokenFile); rmErr != nil {
			return errors.Join(err, rmErr)
		}
		fmt.Fprintln(a.out, "Saved session rejected by the server, run login again")
	}
	return err
}

func (a *App) dispatch(ctx context.Context, cmd string, rest []string) error {
	switch cmd {
	case "signup":
		return a.signup(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "me":
		return a.me(ctx)
	case "profile":
		return a.profile(ctx, rest)
	case "risk", "jobs", "courses", "hustles":
		return a.advice(ctx, cmd, rest)
	case "chat":
		return a.chat(ctx, rest)
	default:
		fmt.Fprintf(a.out, "unknown command %q\n", cmd)
		a.usage()
		return ErrUsage
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "commands: signup, login, me, profile, risk, jobs, courses, hustles, chat")
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	return a.prompt.Line(prompt)
}

func (a *App) credentials(args []string) (string, string, error) {
	email, err := a.argOrPrompt(args, "Email")
	if err != nil {
		return "", "", err
	}
	pw, err := a.prompt.Password()
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(pw)
	return email, string(pw), nil
}

func (a *App) signup(ctx context.Context, args []string) error {
	email, password, err := a.credentials(args)
	if err != nil {
		return err
	}
	name, err := a.prompt.Optional("Full name")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	id, err := a.client.Signup(ctx, email, password, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered, user id: %s\n", id)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	email, password, err := a.credentials(args)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if err := saveToken(a.config.TokenFile, token); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged in")
	return nil
}

func (a *App) me(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	return a.printJSON(user)
}

func (a *App) profile(ctx context.Context, args []string) error {
	req := &pb.SubmitProfileRequest{}
	if len(args) > 0 {
		req.UserId = args[0]
	}

	var err error
	if req.JobTitle, err = a.prompt.Line("Job title"); err != nil {
		return err
	}
	if req.Experience, err = a.prompt.Optional("Experience"); err != nil {
		return err
	}
	if req.Interests, err = a.prompt.Optional("Interests, comma separated"); err != nil {
		return err
	}
	if req.ResumeText, err = a.prompt.Block("Resume text"); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	id, err := a.client.SubmitProfile(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Profile saved, user id: %s\n", id)
	return nil
}

func (a *App) advice(ctx context.Context, cmd string, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "usage: %s <userId>\n", cmd)
		return ErrUsage
	}
	userID := args[0]

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	var (
		res proto.Message
		err error
	)
	switch cmd {
	case "risk":
		res, err = a.client.Risk(ctx, userID)
	case "jobs":
		res, err = a.client.GreenJobs(ctx, userID)
	case "courses":
		res, err = a.client.ReskillingCourses(ctx, userID)
	case "hustles":
		res, err = a.client.SideHustles(ctx, userID)
	}
	if err != nil {
		return err
	}
	return a.printJSON(res)
}

func (a *App) chat(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "usage: chat <userId> <message>")
		return ErrUsage
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	reply, err := a.client.Chat(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, reply)
	return nil
}

func (a *App) printJSON(m proto.Message) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func loadToken(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func removeToken(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

func saveToken(path, token string) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
