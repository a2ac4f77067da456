// Command wsdl2go reads a WSDL document and writes a generated Go SOAP
// client for it, generalizing the teacher's flag-based main.go into a
// cobra command per spec.md §6/§8.
package main

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fiorix/wsdl2go/resolve"
	"github.com/fiorix/wsdl2go/wsdl"
	"github.com/fiorix/wsdl2go/wsdlgo"
)

var opts struct {
	input    string
	output   string
	insecure bool
	verbose  bool
}

var rootCmd = &cobra.Command{
	Use:   "wsdl2go [url-or-path]",
	Short: "Generate a Go SOAP client from a WSDL document",
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&opts.input, "input", "i", "", "input WSDL URL or local path (positional arg also accepted)")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "output.go", `output file, or "-" for stdout`)
	rootCmd.Flags().BoolVar(&opts.insecure, "insecure", false, "skip TLS certificate verification when fetching remote WSDLs")
	rootCmd.Flags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if opts.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	src := opts.input
	if src == "" && len(args) > 0 {
		src = args[0]
	}
	if src == "" {
		return fmt.Errorf("wsdl2go: no input WSDL given")
	}

	cli := http.DefaultClient
	if opts.insecure {
		cli = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}

	log.Debug().Str("src", src).Msg("loading WSDL")
	def, err := wsdl.Load(src, cli)
	if err != nil {
		log.Error().Err(err).Msg("failed to load WSDL")
		return err
	}

	rm, err := resolve.Resolve(def)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve WSDL model")
		return err
	}

	out := os.Stdout
	if opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			log.Error().Err(err).Str("output", opts.output).Msg("failed to create output file")
			return err
		}
		defer f.Close()
		out = f
	}

	enc := wsdlgo.NewEncoder(out)
	if err := enc.Encode(rm); err != nil {
		log.Error().Err(err).Msg("failed to generate Go code")
		return err
	}

	log.Info().Str("output", opts.output).Msg("generated Go SOAP client")
	return nil
}
