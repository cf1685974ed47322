package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dmitrijs2005/apikeeper/internal/client/client"
	"github.com/dmitrijs2005/apikeeper/internal/client/config"
	pb "github.com/dmitrijs2005/apikeeper/internal/proto"
)

// Client is the server API the commands use.
type Client interface {
	RegisterUser(ctx context.Context, firstName, lastName, email string) (*pb.RegisterUserResponse, error)
	ValidateKey(ctx context.Context, apiKey string) (*pb.ValidateKeyResponse, error)
	RegisterAdmin(ctx context.Context, email, password string) (*pb.RegisterAdminResponse, error)
	LoginAdmin(ctx context.Context, email, password string) (string, error)
	ListUsers(ctx context.Context) ([]*pb.UserWithKey, error)
	SetToken(token string)
	Close() error
}

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type App struct {
	v       *viper.Viper
	cfgFile string
	config  *config.Config
	dial    func(addr string) (Client, error)
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp() *App {
	return &App{
		v:      config.NewViper(),
		dial:   dialGRPC,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func dialGRPC(addr string) (Client, error) {
	c, err := client.NewGRPCClient(addr)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Run executes the command line in args.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.RootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "apikeeper",
		Short:         "Client for the APIKeeper key registration and validation service.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.config = c
			return nil
		},
	}
	cmd.SetOut(a.out)
	cmd.SetErr(a.out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.apikeeper.yaml)")
	flags.String("server", "", "gRPC server address (host:port)")
	flags.String("token", "", "admin session token")
	flags.Duration("timeout", 0, "per-request timeout")

	_ = a.v.BindPFlag(config.KeyServer, flags.Lookup("server"))
	_ = a.v.BindPFlag(config.KeyToken, flags.Lookup("token"))
	_ = a.v.BindPFlag(config.KeyTimeout, flags.Lookup("timeout"))

	cmd.AddCommand(a.registerUserCmd())
	cmd.AddCommand(a.validateCmd())
	cmd.AddCommand(a.adminCmd())

	return cmd
}

// withClient dials the server, applies the stored session token and runs fn
// under the configured timeout.
func (a *App) withClient(cmd *cobra.Command, fn func(ctx context.Context, c Client) error) error {
	c, err := a.dial(a.config.ServerEndpointAddr)
	if err != nil {
		return err
	}
	defer c.Close()

	if a.config.Token != "" {
		c.SetToken(a.config.Token)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), a.config.Timeout)
	defer cancel()
	return fn(ctx, c)
}

// promptIfEmpty returns value, or asks for it when empty.
func (a *App) promptIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}
