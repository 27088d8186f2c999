package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func main() {
	subCmd, conf := parseCommandLine()

	var err error
	switch subCmd {
	case startSubCmd:
		err = start(conf.(*startConfig))
	case statusSubCmd:
		err = status(conf.(*statusConfig))
	case genKeySubCmd:
		err = genKey(conf.(*genKeyConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}
