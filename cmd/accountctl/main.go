package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Supported subcommands:
// - migrate:         Create or update the account schema
// - createuser:      Create a regular user
// - createsuperuser: Create a staff superuser with the admin role

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	createUserCmd := flag.NewFlagSet("createuser", flag.ExitOnError)
	createUserEmail := createUserCmd.String("email", "", "Login email of the new user")
	createUserPassword := createUserCmd.String("password", "", "Password; empty stores an unusable password")
	createUserFirstName := createUserCmd.String("first-name", "", "First name")
	createUserLastName := createUserCmd.String("last-name", "", "Last name")
	createUserRole := createUserCmd.String("role", "", "Role (customer, staff, admin); defaults to customer")

	createSuperuserCmd := flag.NewFlagSet("createsuperuser", flag.ExitOnError)
	createSuperuserEmail := createSuperuserCmd.String("email", "", "Login email of the new superuser")
	createSuperuserPassword := createSuperuserCmd.String("password", "", "Password; empty stores an unusable password")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := accountctlFlags{
		Migrate: migrateCmd,
		CreateUser: createUserFlags{
			cmd:       createUserCmd,
			email:     createUserEmail,
			password:  createUserPassword,
			firstName: createUserFirstName,
			lastName:  createUserLastName,
			role:      createUserRole,
		},
		CreateSuperuser: createSuperuserFlags{
			cmd:      createSuperuserCmd,
			email:    createSuperuserEmail,
			password: createSuperuserPassword,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type accountctlFlags struct {
	Migrate         *flag.FlagSet
	CreateUser      createUserFlags
	CreateSuperuser createSuperuserFlags
}

type createUserFlags struct {
	cmd       *flag.FlagSet
	email     *string
	password  *string
	firstName *string
	lastName  *string
	role      *string
}

type createSuperuserFlags struct {
	cmd      *flag.FlagSet
	email    *string
	password *string
}

func runSubcommand(ctx context.Context, flags *accountctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		if err := flags.Migrate.Parse(os.Args[2:]); err != nil {
			return err
		}

		return runMigrate(ctx)

	case "createuser":
		if err := flags.CreateUser.cmd.Parse(os.Args[2:]); err != nil {
			return err
		}

		return runCreateUser(ctx, &flags.CreateUser)

	case "createsuperuser":
		if err := flags.CreateSuperuser.cmd.Parse(os.Args[2:]); err != nil {
			return err
		}

		return runCreateSuperuser(ctx, &flags.CreateSuperuser)

	case "help", "-h", "--help":
		printUsage()

		return nil

	default:
		printUsage()

		return fmt.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

func printUsage() {
	fmt.Println(`accountctl - account management commands

Usage:
  accountctl <command> [options]

Commands:
  migrate          Create or update the account schema
  createuser       Create a regular user
  createsuperuser  Create a staff superuser with the admin role

Examples:
  accountctl migrate
  accountctl createuser -email ada@example.com -password secret -first-name Ada -role staff
  accountctl createsuperuser -email root@example.com -password secret

Configuration is read from config/config.yaml and environment variables, as for the API server.`)
}
