// Command csafcheck is the reference CLI named in spec.md §6: it loads a
// CSAF document, runs a preset (or a single test) against it, and prints
// the resulting findings.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quay/csafval"
	"github.com/quay/csafval/accessor"
	"github.com/quay/csafval/loader"
	"github.com/quay/csafval/registry"
	"github.com/quay/csafval/validate"
	"github.com/quay/csafval/v20"
	"github.com/quay/csafval/v21"
)

var (
	flagPreset     string
	flagTest       string
	flagSchemaPath string
	flagFormat     string
)

var rootCmd = &cobra.Command{
	Use:   "csafcheck [document]",
	Short: "Validate a CSAF 2.0/2.1 document against its conformance tests",
	Long: `csafcheck loads a CSAF document and runs its conformance tests
(by preset, or a single test by id), printing structured findings.

Pass "-" as the document path to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.Flags().StringVar(&flagPreset, "preset", "full", "preset of tests to run")
	rootCmd.Flags().StringVar(&flagTest, "test", "", "run a single test id instead of a preset")
	rootCmd.Flags().StringVar(&flagSchemaPath, "schema", "", "optional JSON Schema file to pre-validate the document against")
	rootCmd.Flags().StringVar(&flagFormat, "format", "text", "output format: text or json")

	_ = viper.BindPFlag("preset", rootCmd.Flags().Lookup("preset"))
	_ = viper.BindPFlag("test", rootCmd.Flags().Lookup("test"))
	_ = viper.BindPFlag("schema", rootCmd.Flags().Lookup("schema"))
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
}

func initConfig() {
	viper.SetEnvPrefix("csafcheck")
	viper.AutomaticEnv()
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var raw []byte
	var err error
	if args[0] == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("csafcheck: reading document: %w", err)
	}

	if path := viper.GetString("schema"); path != "" {
		problems, err := loader.ValidateSchema(raw, path)
		if err != nil {
			return err
		}
		if len(problems) > 0 {
			for _, p := range problems {
				fmt.Fprintln(os.Stderr, "schema:", p)
			}
			return fmt.Errorf("csafcheck: document failed schema pre-validation")
		}
	}

	doc, err := loader.Load(raw)
	if err != nil {
		return err
	}

	reg := registryFor(doc)

	var results []validate.Result
	if id := viper.GetString("test"); id != "" {
		results = []validate.Result{validate.ValidateByTest(ctx, reg, doc, id)}
	} else {
		preset := viper.GetString("preset")
		var ok bool
		results, ok = validate.ValidateByPreset(ctx, reg, doc, preset)
		if !ok {
			return &csafval.Error{Op: "csafcheck.run", Kind: csafval.ErrUnknownTest, Message: fmt.Sprintf("unknown preset %q", preset)}
		}
	}

	return report(results, viper.GetString("format"))
}

// registryFor selects the per-revision registry matching doc's concrete
// type, since accessor.Document carries no revision tag of its own.
func registryFor(doc accessor.Document) *registry.Registry {
	switch doc.(type) {
	case *v21.Document:
		return registry.NewV21Registry()
	case *v20.Document:
		return registry.NewV20Registry()
	default:
		return registry.NewV21Registry()
	}
}

func report(results []validate.Result, format string) error {
	failed := 0
	for _, r := range results {
		switch format {
		case "json":
			fmt.Printf("{%q:%q,%q:%q", "test_id", r.TestID, "status", string(r.Status))
			if r.Finding != nil {
				fmt.Printf(",%q:%q,%q:%q", "message", r.Finding.Message, "instance_path", r.Finding.InstancePath)
			}
			fmt.Println("}")
		default:
			if r.Finding != nil {
				fmt.Printf("%s\tFAILED\t%s\t%s\n", r.TestID, r.Finding.Message, r.Finding.InstancePath)
			} else {
				fmt.Printf("%s\t%s\n", r.TestID, r.Status)
			}
		}
		if r.Status == validate.StatusFailed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("csafcheck: %d test(s) failed", failed)
	}
	return nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		<-ch
		cancel()
	}()
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
