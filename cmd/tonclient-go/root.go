package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient"
	"github.com/hsiuhsiu/tonclient-go/pkg/tonclient/logging"
)

type options struct {
	configPath string
	libDirs    []string
	candidates []string
	tempDir    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "tonclient-go",
		Short:         "Load the TON client native module and send JSON requests to it",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringSliceVar(&opts.libDirs, "lib-dir", nil, "Directory searched for the native module (repeatable)")
	flags.StringSliceVar(&opts.candidates, "candidate", nil, "Module base name to try (repeatable)")
	flags.StringVar(&opts.tempDir, "temp-dir", "", "Directory for extracted modules")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every load attempt and request")

	root.AddCommand(
		newVersionCmd(opts),
		newCallCmd(opts),
		newErrorsCmd(),
		newSuffixCmd(),
	)
	return root
}

// settings merges the config file and the flags; flags win.
func (o *options) settings() (tonclient.Config, tonclient.ClientConfig, error) {
	var cfg tonclient.Config
	var network tonclient.ClientConfig
	if o.configPath != "" {
		fc, err := tonclient.LoadFile(o.configPath)
		if err != nil {
			return cfg, network, err
		}
		cfg = fc.Library.Apply(cfg)
		network = fc.Network
	}
	cfg = tonclient.LibraryConfig{Candidates: o.candidates, SearchDirs: o.libDirs, TempDir: o.tempDir}.Apply(cfg)
	return cfg, network, nil
}

func (o *options) logger() (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if o.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// open loads the module. ok == false means it is unavailable in this build or
// on this host, which callers report without failing.
func (o *options) open(ctx context.Context, out io.Writer) (b *tonclient.Bridge, network tonclient.ClientConfig, ok bool, err error) {
	cfg, network, err := o.settings()
	if err != nil {
		return nil, network, false, err
	}
	zl, err := o.logger()
	if err != nil {
		return nil, network, false, fmt.Errorf("init logger: %w", err)
	}
	cfg.Logger = logging.NewZap(zl)

	b, err = tonclient.Open(ctx, cfg)
	if err != nil {
		if errors.Is(err, tonclient.ErrNotBuilt) || errors.Is(err, tonclient.ErrModuleUnavailable) {
			fmt.Fprintf(out, "native module unavailable: %v\n", err)
			return nil, network, false, nil
		}
		return nil, network, false, fmt.Errorf("unexpected failure loading native module: %w", err)
	}
	return b, network, true, nil
}

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wrapper version and, when loadable, the native module version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tonclient-go version: %s\n", tonclient.WrapperVersion())

			b, _, ok, err := opts.open(cmd.Context(), out)
			if err != nil || !ok {
				return err
			}
			return b.WithContext(func(c *tonclient.Context) error {
				v, err := tonclient.NativeVersion(c)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "native module version: %s\n", v)
				return nil
			})
		},
	}
}

func newCallCmd(opts *options) *cobra.Command {
	var raw, setup bool
	cmd := &cobra.Command{
		Use:   "call <method> [params-json]",
		Short: "Send one JSON request and print the response",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, params := args[0], ""
			if len(args) == 2 {
				params = args[1]
			}
			out := cmd.OutOrStdout()

			b, network, ok, err := opts.open(cmd.Context(), out)
			if err != nil || !ok {
				return err
			}
			return b.WithContext(func(c *tonclient.Context) error {
				if setup {
					client := tonclient.NewBuilder().FromConfig(network).Build()
					if err := client.Setup(c); err != nil {
						return err
					}
				}
				p, err := c.RequestPayload(method, params)
				if err != nil {
					return err
				}
				if p.Failed() {
					fmt.Fprintln(cmd.ErrOrStderr(), p.Error)
					return p.Err()
				}
				if raw {
					fmt.Fprintln(out, p.Result)
					return nil
				}
				if v, ok := tonclient.Transform(method, p.Result); ok {
					fmt.Fprintln(out, v)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the response without method rewrites")
	cmd.Flags().BoolVar(&setup, "setup", false, "Send setup with the configured network first")
	return cmd
}

func newErrorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errors [code]",
		Short: "Describe native error codes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid code %q: %w", args[0], err)
				}
				fmt.Fprintln(out, tonclient.ErrorCode(n))
				return nil
			}
			codes := tonclient.KnownErrorCodes()
			sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
			for _, c := range codes {
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}
}

func newSuffixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suffix [os]",
		Short: "Show the module file names for an operating system",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			osID := runtime.GOOS
			if len(args) == 1 {
				osID = args[0]
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "suffix: %s\n", tonclient.PlatformSuffix(osID))
			for _, name := range tonclient.DefaultCandidates {
				fmt.Fprintf(out, "%s: library %s, resource %s\n", name,
					tonclient.LibraryFileName(osID, name), tonclient.ResourceName(osID, name))
			}
			return nil
		},
	}
}
