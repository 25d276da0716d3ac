package display

import (
	"fmt"
	"os"

	"github.com/backmassage/sheetmaster/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____  _               _   __  __           _
/ ___|| |__   ___  ___| |_|  \/  | __ _ ___| |_ ___ _ __
\___ \| '_ \ / _ \/ _ \ __| |\/| |/ _`+"`"+` / __| __/ _ \ '__|
 ___) | | | |  __/  __/ |_| |  | | (_| \__ \ ||  __/ |
|____/|_| |_|\___|\___|\__|_|  |_|\__,_|___/\__\___|_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
