// Command cli is the operator tool for user administration.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/amirasaad/invochain/infra"
	"github.com/amirasaad/invochain/infra/initializer"
	"github.com/amirasaad/invochain/pkg/app"
	"github.com/amirasaad/invochain/pkg/config"
	"github.com/amirasaad/invochain/pkg/domain/user"
	"github.com/amirasaad/invochain/pkg/dto"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  users list [limit] [offset]            list users, newest first
  users count                            count users
  users create <username> <email> [investor|sme]
                                         create a user; password is prompted
  users delete <id>                      delete a user and everything it owns
  seed                                   create the demo users on an empty database`

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed, color.Bold)
	headColor = color.New(color.FgCyan, color.Bold)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	cfg, err := config.Load(config.EnvFile())
	if err != nil {
		_, _ = errColor.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		_, _ = errColor.Fprintln(os.Stderr, "Failed to connect to database:", err)
		os.Exit(1)
	}
	defer infra.Close(deps.DB) //nolint:errcheck

	c := &cli{app: app.New(deps, cfg), out: os.Stdout, readPassword: promptPassword}
	if err := c.run(context.Background(), os.Args[1:]); err != nil {
		_, _ = errColor.Fprintln(os.Stderr, "Error:", err)
		infra.Close(deps.DB) //nolint:errcheck
		os.Exit(1)
	}
}

type cli struct {
	app          *app.App
	out          io.Writer
	readPassword func() (string, error)
}

var errUsage = errors.New("invalid arguments; run without arguments for usage")

func (c *cli) run(ctx context.Context, args []string) error {
	switch args[0] {
	case "users":
		if len(args) < 2 {
			return errUsage
		}
		return c.users(ctx, args[1], args[2:])
	case "seed":
		n, err := c.app.UserService.SeedDemoUsers(ctx)
		if err != nil {
			return err
		}
		_, _ = okColor.Fprintf(c.out, "Seeded %d demo users\n", n)
		return nil
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *cli) users(ctx context.Context, sub string, args []string) error {
	svc := c.app.UserService
	switch sub {
	case "list":
		limit, offset := 50, 0
		var err error
		if len(args) > 0 {
			if limit, err = strconv.Atoi(args[0]); err != nil {
				return errUsage
			}
		}
		if len(args) > 1 {
			if offset, err = strconv.Atoi(args[1]); err != nil {
				return errUsage
			}
		}
		users, err := svc.ListUsers(ctx, limit, offset)
		if err != nil {
			return err
		}
		c.printUsers(users)
		return nil
	case "count":
		n, err := svc.CountUsers(ctx)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(c.out, "%d users\n", n)
		return nil
	case "create":
		if len(args) < 2 {
			return errUsage
		}
		role := user.RoleInvestor
		if len(args) > 2 {
			role = user.Role(args[2])
		}
		password, err := c.readPassword()
		if err != nil {
			return err
		}
		u, err := svc.CreateUser(ctx, dto.UserCreate{
			Username: args[0],
			Email:    args[1],
			Password: password,
			Role:     role,
		})
		if err != nil {
			return err
		}
		_, _ = okColor.Fprintf(c.out, "Created user %s (id=%d, %s)\n", u.Username, u.ID, u.Role)
		return nil
	case "delete":
		if len(args) < 1 {
			return errUsage
		}
		id, err := strconv.ParseUint(args[0], 10, 0)
		if err != nil {
			return errUsage
		}
		if err := svc.DeleteUser(ctx, uint(id)); err != nil {
			return err
		}
		_, _ = okColor.Fprintf(c.out, "Deleted user %d\n", id)
		return nil
	default:
		return fmt.Errorf("unknown users command %q", sub)
	}
}

func (c *cli) printUsers(users []*dto.UserRead) {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	_, _ = headColor.Fprintln(w, "ID\tUSERNAME\tEMAIL\tTYPE\tCREATED\tLAST LOGIN")
	for _, u := range users {
		lastLogin := "-"
		if u.LastLogin != nil {
			lastLogin = u.LastLogin.Format(time.RFC3339)
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Username, u.Email, u.Role, u.CreatedAt.Format(time.RFC3339), lastLogin)
	}
	_ = w.Flush()
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("password prompt needs a terminal")
	}
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errors.New("password must not be empty")
	}
	return string(raw), nil
}
