package cmd

import (
	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	odata "github.com/uevc/odata.v4.parser"
	"github.com/uevc/odata.v4.parser/edm"
	"github.com/uevc/odata.v4.parser/odataparser"
)

func loadParser() (*odata.Parser, error) {
	if metadataFile == "" {
		return odata.NewParser(nil), nil
	}
	schema, err := edm.LoadFile(metadataFile)
	if err != nil {
		return nil, errors.Wrap(err, "loading metadata")
	}
	return odata.NewParser(schema), nil
}

func runParse(parse func(p *odata.Parser, input string) (*odataparser.Token, error)) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			_ = cmd.Help()
			return errors.New("expected exactly one argument: the input to parse")
		}
		p, err := loadParser()
		if err != nil {
			return err
		}
		tok, err := parse(p, args[0])
		if err != nil {
			logrus.WithError(err).Error("parse failed")
			return err
		}
		repr.Println(tok)
		return nil
	}
}

var (
	uriCmd = &cobra.Command{
		Use:   "uri <odata-uri>",
		Short: "Parse a full OData URI",
		RunE: runParse(func(p *odata.Parser, input string) (*odataparser.Token, error) {
			return p.ODataUri(input)
		}),
	}
	pathCmd = &cobra.Command{
		Use:   "path <resource-path>",
		Short: "Parse a resource path",
		RunE: runParse(func(p *odata.Parser, input string) (*odataparser.Token, error) {
			return p.ResourcePath(input)
		}),
	}
	queryCmd = &cobra.Command{
		Use:   "query <query-options>",
		Short: "Parse the query options after '?'",
		RunE: runParse(func(p *odata.Parser, input string) (*odataparser.Token, error) {
			return p.QueryOptions(input)
		}),
	}
	filterCmd = &cobra.Command{
		Use:   "filter <expression>",
		Short: "Parse a $filter expression",
		RunE: runParse(func(p *odata.Parser, input string) (*odataparser.Token, error) {
			return p.Filter(input)
		}),
	}
	keysCmd = &cobra.Command{
		Use:   "keys <key-predicate>",
		Short: "Parse a parenthesised key predicate",
		RunE: runParse(func(p *odata.Parser, input string) (*odataparser.Token, error) {
			return p.Keys(input)
		}),
	}
	literalCmd = &cobra.Command{
		Use:   "literal <primitive-literal>",
		Short: "Parse a single primitive literal",
		RunE: runParse(func(p *odata.Parser, input string) (*odataparser.Token, error) {
			return p.Literal(input)
		}),
	}
)

func init() {
	rootCmd.AddCommand(uriCmd, pathCmd, queryCmd, filterCmd, keysCmd, literalCmd)
}
