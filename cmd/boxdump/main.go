/*
Command boxdump lays out a widget tree described in YAML and prints the
resulting boxes, either as an indented tree or in GraphViz DOT format.

	boxdump --css theme.css --width 320 --height 200 widgets.yaml

Settings may also be given in a config file (./boxdump.yaml or --config)
or as environment variables with prefix BOXDUMP_.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
