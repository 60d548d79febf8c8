/*
main.go - Command-line day count calculator

PURPOSE:
  Computes day count fractions and schedules from the shell, and checks
  basis seed files before they are handed to the server.

COMMANDS:
  conventions                 List supported conventions
  fraction                    Fraction between two dates
  schedule DATE DATE...       Fractions of consecutive periods
  bases validate FILE         Validate a YAML seed file
  bases presets               Print the built-in bases as YAML

EXAMPLES:
  daycount fraction -c ACT/360 -s 2024-01-01 -e 2024-07-01
  daycount fraction -c 30E/360-ISDA -s 2024-01-31 -e 2024-02-29 -t 2024-02-29
  daycount schedule -c 30/360 -p 6 2024-01-15 2024-07-15 2025-01-15

SEE ALSO:
  - daycount/convention.go: Convention catalog and aliases
  - factory/basis.go: Seed file format
*/
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
