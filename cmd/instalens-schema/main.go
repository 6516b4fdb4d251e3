// Command instalens-schema prints JSON Schemas for the shapes the analysis
// layer hands to a rendering frontend, so chart code in another codebase can
// validate what it consumes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/invopop/jsonschema"

	"github.com/calegan/instalens/analysis"
	"github.com/calegan/instalens/archive"
)

var schemaTypes = map[string]func() *jsonschema.Schema{
	"message":          schemaFor[archive.Message],
	"login_record":     schemaFor[archive.LoginRecord],
	"follow_record":    schemaFor[archive.FollowRecord],
	"personal_info":    schemaFor[archive.PersonalInfo],
	"advertiser":       schemaFor[archive.Advertiser],
	"length_series":    schemaFor[analysis.LengthSeries],
	"cyclic_breakdown": schemaFor[analysis.CyclicBreakdown],
}

func schemaFor[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	return reflector.Reflect(v)
}

func main() {
	var (
		name   string
		pretty bool
	)
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	fs.StringVar(&name, "type", "all", "Type to emit a schema for (or \"all\")")
	fs.BoolVar(&pretty, "pretty", true, "Pretty-print the JSON output")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	var out any
	if name == "all" {
		all := make(map[string]*jsonschema.Schema, len(schemaTypes))
		for n, build := range schemaTypes {
			all[n] = build()
		}
		out = all
	} else {
		build, ok := schemaTypes[name]
		if !ok {
			names := make([]string, 0, len(schemaTypes))
			for n := range schemaTypes {
				names = append(names, n)
			}
			sort.Strings(names)
			fmt.Fprintf(os.Stderr, "unknown type %q: one of %v\n", name, names)
			os.Exit(2)
		}
		out = build()
	}

	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
