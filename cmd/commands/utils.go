package commands

import (
	"fmt"
	"os"

	"vidtube/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("vidtube error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	help := `usage: vidtube <command>
commands:
  run <config path>  start the catalog service
  version            print the version
  help               print this help`

	fmt.Println(help) //nolint
}
