package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mmynk/camptrack/internal/auth"
	"github.com/mmynk/camptrack/internal/report"
	"github.com/mmynk/camptrack/internal/storage"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	store  storage.Store
	engine *report.Engine
	jwt    *auth.JWTManager
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  adduser -username USERNAME -role admin|coordinator|leader|parent - create a user")
	fmt.Fprintln(cli.out, "  users - list users")
	fmt.Fprintln(cli.out, "  disable -username USERNAME - refuse the user's tokens")
	fmt.Fprintln(cli.out, "  enable -username USERNAME - accept the user's tokens again")
	fmt.Fprintln(cli.out, "  token -username USERNAME - print a bearer token for the user")
	fmt.Fprintln(cli.out, "  setrate -rate AMOUNT - set the daily leader pay rate")
	fmt.Fprintln(cli.out, "  payreport - print pay for every assigned leader")
	fmt.Fprintln(cli.out, "  shortages - print camps short of food")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserCmd.SetOutput(cli.out)
	addUserName := addUserCmd.String("username", "", "The new user's login name.")
	addUserRole := addUserCmd.String("role", "", "One of admin, coordinator, leader, parent.")

	enableCmd := flag.NewFlagSet(args[1], flag.ContinueOnError)
	enableCmd.SetOutput(cli.out)
	enableUser := enableCmd.String("username", "", "The user to switch on or off.")

	tokenCmd := flag.NewFlagSet("token", flag.ContinueOnError)
	tokenCmd.SetOutput(cli.out)
	tokenUser := tokenCmd.String("username", "", "The user to issue the token for.")

	setRateCmd := flag.NewFlagSet("setrate", flag.ContinueOnError)
	setRateCmd.SetOutput(cli.out)
	setRateAmount := setRateCmd.String("rate", "", "Daily pay rate, for example 15.00.")

	switch args[1] {
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserName == "" || *addUserRole == "" {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserName, *addUserRole)
	case "users":
		return cli.listUsers()
	case "disable", "enable":
		if err := enableCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *enableUser == "" {
			enableCmd.Usage()
			return errHelp
		}
		return cli.setEnabled(*enableUser, args[1] == "enable")
	case "token":
		if err := tokenCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *tokenUser == "" {
			tokenCmd.Usage()
			return errHelp
		}
		return cli.issueToken(*tokenUser)
	case "setrate":
		if err := setRateCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *setRateAmount == "" {
			setRateCmd.Usage()
			return errHelp
		}
		return cli.setRate(*setRateAmount)
	case "payreport":
		return cli.payReport()
	case "shortages":
		return cli.shortages()
	default:
		cli.printUsage()
		return errHelp
	}
}
