// Package cli is the command tree of immvisctl.
package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/immvis/immvis-go/internal/pkg/client/immvis"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "immvis"

	flagTarget  = "target"
	flagTimeout = "timeout"
	flagRetries = "retries"
	flagBackoff = "retry-backoff"
	flagWait    = "wait"
	flagPretty  = "pretty"
)

// ClientFactory creates the client a command talks through.
type ClientFactory func(target string, params immvis.ClientParams) immvis.Client

func defaultClientFactory(target string, params immvis.ClientParams) immvis.Client {
	return immvis.NewFromTarget(target, params)
}

type app struct {
	v         *viper.Viper
	newClient ClientFactory
	client    immvis.Client
}

// NewRootCmd returns the immvisctl command tree. A nil newClient dials the
// target with immvis.NewFromTarget.
func NewRootCmd(newClient ClientFactory) *cobra.Command {
	if newClient == nil {
		newClient = defaultClientFactory
	}
	a := &app{v: viper.New(), newClient: newClient}

	root := &cobra.Command{
		Use:   "immvisctl",
		Short: "Query an ImmVis dataset service",
		Long: `immvisctl runs one ImmVis operation per invocation and prints the result as JSON.

Flags can be set through IMMVIS_* environment variables, e.g. IMMVIS_TARGET.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String(flagTarget, immvis.DefaultTarget, "grpc target of the ImmVis service")
	flags.Duration(flagTimeout, 30*time.Second, "timeout of the operation, 0 disables it")
	flags.Int(flagRetries, 0, "retries while the service is unavailable")
	flags.Duration(flagBackoff, 100*time.Millisecond, "initial backoff between retries")
	flags.Bool(flagWait, false, "wait until the connection is ready before the operation")
	flags.Bool(flagPretty, false, "indent JSON output")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		a.openCmd(),
		a.dimensionsCmd(),
		a.statisticsCmd(),
		a.infoCmd(),
		a.outliersCmd(),
		a.centroidsCmd(),
		a.mappingCmd(),
		a.dataCmd(),
		a.valuesCmd(),
		a.correlationCmd(),
		a.matrixCmd(),
		a.readyCmd(),
	)
	return root
}

type runFunc func(cmd *cobra.Command, args []string) error

// withClient initializes a client for the duration of fn.
func (a *app) withClient(waitReady bool, fn runFunc) runFunc {
	return func(cmd *cobra.Command, args []string) (err error) {
		params := immvis.ClientParams{
			Timeout:             a.v.GetDuration(flagTimeout),
			MaxRetries:          a.v.GetInt(flagRetries),
			InitialRetryBackoff: a.v.GetDuration(flagBackoff),
			MaxRetryBackoff:     10 * a.v.GetDuration(flagBackoff),
		}
		a.client = a.newClient(a.v.GetString(flagTarget), params)
		if err = a.client.Initialize(); err != nil {
			return err
		}
		defer func() {
			if releaseErr := a.client.Release(); err == nil {
				err = releaseErr
			}
		}()

		if waitReady && a.v.GetBool(flagWait) {
			if err = a.waitForReady(cmd.Context()); err != nil {
				return err
			}
		}
		return fn(cmd, args)
	}
}

func (a *app) waitForReady(ctx context.Context) error {
	if timeout := a.v.GetDuration(flagTimeout); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := a.client.WaitForReady(ctx); err != nil {
		return fmt.Errorf("immvis at %s is not ready: %w", a.client.Target(), err)
	}
	return nil
}
