// Command chamactl is a terminal client for the chama API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"

	"github.com/Denniskaninu/chama-smart-sync/internal/middleware"
	"github.com/Denniskaninu/chama-smart-sync/internal/refcheck"
	pb "github.com/Denniskaninu/chama-smart-sync/pkg/proto"
	"github.com/Denniskaninu/chama-smart-sync/pkg/proto/protoconnect"
)

const usage = `Usage: chamactl <command> [arguments]
Commands:
  register <email> <name>           create an account (prompts for password)
  login <email>                     print a token for CHAMA_TOKEN
  groups                            list your groups
  create <name> <description>       create a group
  join <group_id>                   join a group
  contribute <group_id> <amount> <ref>
  history [--check]                 contributions across your groups
  rotate <group_id>                 advance the merry-go-round
  loan <group_id> <amount>          request a loan
  vote <loan_id> approve|reject
  watch <group_id>                  stream live group updates
  check-ref                         check references as you type them`

// settings are read from CHAMA_* environment variables.
type settings struct {
	URL      string        `envconfig:"URL" default:"http://localhost:8080"`
	Token    string        `envconfig:"TOKEN"`
	Debounce time.Duration `envconfig:"REFCHECK_DEBOUNCE" default:"500ms"`
	Endpoint string        `envconfig:"REFCHECK_ENDPOINT"`
}

type clients struct {
	groups        protoconnect.GroupServiceClient
	contributions protoconnect.ContributionServiceClient
	loans         protoconnect.LoanServiceClient
	auth          protoconnect.AuthServiceClient
}

func newClients(s settings) *clients {
	hc := cleanhttp.DefaultPooledClient()
	opts := []connect.ClientOption{connect.WithInterceptors(middleware.BearerCredentials(s.Token))}
	return &clients{
		groups:        protoconnect.NewGroupServiceClient(hc, s.URL, opts...),
		contributions: protoconnect.NewContributionServiceClient(hc, s.URL, opts...),
		loans:         protoconnect.NewLoanServiceClient(hc, s.URL, opts...),
		auth:          protoconnect.NewAuthServiceClient(hc, s.URL, opts...),
	}
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}

	var s settings
	if err := envconfig.Process("CHAMA", &s); err != nil {
		fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, s, os.Args[1], os.Args[2:], os.Stdin, os.Stdout); err != nil {
		fail(err)
	}
}

func run(ctx context.Context, s settings, cmd string, args []string, in io.Reader, out io.Writer) error {
	c := newClients(s)

	switch cmd {
	case "register":
		if len(args) < 2 {
			return errors.New("usage: register <email> <name>")
		}
		pass, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		resp, err := c.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
			Email: args[0], DisplayName: strings.Join(args[1:], " "), Password: pass,
		}))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Registered %s\nexport CHAMA_TOKEN=%s\n", resp.Msg.User.Id, resp.Msg.Token)

	case "login":
		if len(args) < 1 {
			return errors.New("usage: login <email>")
		}
		pass, err := readPassword("Password: ")
		if err != nil {
			return err
		}
		resp, err := c.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: args[0], Password: pass}))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "export CHAMA_TOKEN=%s\n", resp.Msg.Token)

	case "groups":
		resp, err := c.groups.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
		if err != nil {
			return err
		}
		for _, g := range resp.Msg.Groups {
			printGroup(out, g)
		}

	case "create":
		if len(args) < 2 {
			return errors.New("usage: create <name> <description>")
		}
		resp, err := c.groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{
			Name: args[0], Description: strings.Join(args[1:], " "),
		}))
		if err != nil {
			return err
		}
		printGroup(out, resp.Msg.Group)

	case "join":
		if len(args) < 1 {
			return errors.New("usage: join <group_id>")
		}
		resp, err := c.groups.JoinGroup(ctx, connect.NewRequest(&pb.JoinGroupRequest{GroupId: args[0]}))
		if err != nil {
			return err
		}
		printGroup(out, resp.Msg.Group)

	case "contribute":
		if len(args) < 3 {
			return errors.New("usage: contribute <group_id> <amount> <ref>")
		}
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		resp, err := c.contributions.RecordContribution(ctx, connect.NewRequest(&pb.RecordContributionRequest{
			GroupId: args[0], Amount: amount, Ref: args[2],
		}))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Recorded %s. Kitty balance: %s\n",
			formatAmount(resp.Msg.Contribution.Amount), formatAmount(resp.Msg.Group.KittyBalance))

	case "history":
		check := len(args) > 0 && args[0] == "--check"
		resp, err := c.contributions.ListContributionHistory(ctx, connect.NewRequest(&pb.ListContributionHistoryRequest{
			CheckReferences: check,
		}))
		if err != nil {
			return err
		}
		printHistory(out, resp.Msg)

	case "rotate":
		if len(args) < 1 {
			return errors.New("usage: rotate <group_id>")
		}
		resp, err := c.groups.AdvanceRotation(ctx, connect.NewRequest(&pb.AdvanceRotationRequest{GroupId: args[0]}))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Next beneficiary: %s (position %d)\n", resp.Msg.Beneficiary.Name, resp.Msg.Index+1)

	case "loan":
		if len(args) < 2 {
			return errors.New("usage: loan <group_id> <amount>")
		}
		amount, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		resp, err := c.loans.RequestLoan(ctx, connect.NewRequest(&pb.RequestLoanRequest{GroupId: args[0], Amount: amount}))
		if err != nil {
			return err
		}
		printLoan(out, resp.Msg.Loan)

	case "vote":
		if len(args) < 2 || (args[1] != "approve" && args[1] != "reject") {
			return errors.New("usage: vote <loan_id> approve|reject")
		}
		resp, err := c.loans.CastVote(ctx, connect.NewRequest(&pb.CastVoteRequest{
			LoanId: args[0], Approve: args[1] == "approve",
		}))
		if err != nil {
			return err
		}
		printLoan(out, resp.Msg.Loan)

	case "watch":
		if len(args) < 1 {
			return errors.New("usage: watch <group_id>")
		}
		return watch(ctx, c.groups, args[0], out)

	case "check-ref":
		return checkRefs(ctx, newChecker(s), s.Debounce, in, out)

	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
	return nil
}

func watch(ctx context.Context, groups protoconnect.GroupServiceClient, groupID string, out io.Writer) error {
	stream, err := groups.WatchGroup(ctx, connect.NewRequest(&pb.WatchGroupRequest{GroupId: groupID}))
	if err != nil {
		return err
	}
	defer stream.Close()

	for stream.Receive() {
		printEvent(out, stream.Msg())
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func newChecker(s settings) *refcheck.Checker {
	var classifier refcheck.Classifier = refcheck.HeuristicClassifier{}
	if s.Endpoint != "" {
		classifier = refcheck.NewHTTPClassifier(s.Endpoint, nil)
	}
	return refcheck.NewChecker(classifier)
}

// checkRefs reads references line by line and prints the verdict for the
// most recent one once input settles. At end of input it waits for the
// last line's verdict.
func checkRefs(ctx context.Context, checker *refcheck.Checker, debounce time.Duration, in io.Reader, out io.Writer) error {
	w := refcheck.NewWatcher(checker, debounce)
	defer w.Close()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		last     string
		settled  bool
		deadline <-chan time.Time
	)
	input := lines
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-deadline:
			return errors.New("timed out waiting for the last reference check")
		case line, ok := <-input:
			if !ok {
				if last == "" || settled {
					return nil
				}
				input = nil
				deadline = time.After(debounce + refcheck.DefaultTimeout)
				continue
			}
			last, settled = strings.TrimSpace(line), false
			w.Update(line)
		case res := <-w.Results():
			printCheck(out, res)
			settled = res.Ref == last
			if input == nil && settled {
				return nil
			}
		}
	}
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorColor.Sprint("error: ")+describeError(err))
	os.Exit(1)
}
