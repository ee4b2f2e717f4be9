package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/structs"
	defaults "github.com/mcuadros/go-defaults"
	toml "github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
)

// -----------------------------------------------------------------------------

var configNewAsEnvFlag bool

// -----------------------------------------------------------------------------

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration",
}

var configNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Initialize a default configuration",
	Run: func(cmd *cobra.Command, args []string) {
		defaults.SetDefaults(conf)

		if !configNewAsEnvFlag {
			btes, err := toml.Marshal(*conf)
			if err != nil {
				fmt.Printf("Error during configuration export")
				return
			}
			fmt.Println(string(btes))
		} else {
			for _, line := range exportLines(asEnvVariables(conf, envPrefix, true)) {
				fmt.Println(line)
			}
		}
	},
}

func init() {
	configNewCmd.Flags().BoolVar(&configNewAsEnvFlag, "env", false, "print environment variable exports instead of TOML")
	configCmd.AddCommand(configNewCmd)
}

// exportLines renders variables as sorted shell export statements.
func exportLines(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("export %s=\"%s\"", k, m[k])
	}
	return lines
}

// asEnvVariables flattens struct values into environment variable names
func asEnvVariables(o interface{}, prefix string, skipCommented bool) map[string]string {
	r := map[string]string{}
	prefix = strings.ToUpper(prefix)
	delim := "_"
	if prefix == "" {
		delim = ""
	}
	fields := structs.Fields(o)
	for _, f := range fields {
		if skipCommented {
			tag := f.Tag("commented")
			if tag != "" {
				commented, err := strconv.ParseBool(tag)
				if err == nil && commented {
					continue
				}
			}
		}
		if structs.IsStruct(f.Value()) {
			rf := asEnvVariables(f.Value(), prefix+delim+f.Name(), skipCommented)
			for k, v := range rf {
				r[k] = v
			}
		} else {
			r[prefix+delim+strings.ToUpper(f.Name())] = fmt.Sprintf("%v", f.Value())
		}
	}
	return r
}
