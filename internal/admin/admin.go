// Package admin implements courtctl, the operator command line used to
// provision accounts that cannot be created through the public API.
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/courtbook/internal/flagx"
	"github.com/dmitrijs2005/courtbook/internal/logging"
	"github.com/dmitrijs2005/courtbook/internal/server"
	"github.com/dmitrijs2005/courtbook/internal/server/config"
	"github.com/dmitrijs2005/courtbook/internal/server/users"
)

const usage = `usage: courtctl create-owner -first NAME -last NAME -username NAME -age N
       -city CITY -state ST -zip ZIP -email EMAIL -level LEVEL [-image URL]`

var ErrUsage = errors.New(usage)

var ownerFlags = []string{"-first", "-last", "-username", "-age", "-city", "-state", "-zip", "-email", "-level", "-image"}

// parseOwnerFlags reads the owner profile from args. Flags that belong to
// the server configuration are skipped.
func parseOwnerFlags(args []string) (users.ProfileInput, error) {
	var in users.ProfileInput

	fs := flag.NewFlagSet("create-owner", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&in.FirstName, "first", "", "first name")
	fs.StringVar(&in.LastName, "last", "", "last name")
	fs.StringVar(&in.Username, "username", "", "username")
	fs.Float64Var(&in.Age, "age", 0, "age")
	fs.StringVar(&in.City, "city", "", "city")
	fs.StringVar(&in.State, "state", "", "2 letter state code")
	fs.StringVar(&in.Zip, "zip", "", "zip code")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.ExperienceLevel, "level", "", "beginner, intermediate or advanced")
	fs.StringVar(&in.Image, "image", "", "profile image URL")

	if err := fs.Parse(flagx.FilterArgs(args, ownerFlags)); err != nil {
		return users.ProfileInput{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return in, nil
}

// CreateOwner prompts for the password and registers in as an owner.
func CreateOwner(ctx context.Context, svc *users.Service, in users.ProfileInput, w io.Writer) (*users.User, error) {
	password, err := GetConfirmedPassword(w)
	if err != nil {
		return nil, err
	}

	return svc.CreateUser(ctx, users.RegisterInput{ProfileInput: in, Password: password, Role: users.RoleOwner})
}

// Run executes the subcommand in args against the store described by cfg.
func Run(ctx context.Context, args []string, cfg *config.Config, w io.Writer) error {
	if len(args) == 0 || args[0] != "create-owner" {
		return ErrUsage
	}

	in, err := parseOwnerFlags(args[1:])
	if err != nil {
		return err
	}

	logger := logging.New("courtctl", cfg.LogLevel)

	repos, err := server.NewRepositoryManager(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close(context.Background())

	u, err := CreateOwner(ctx, server.NewUserService(cfg, repos, logger), in, w)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "owner %s created with id %s\n", u.Username, u.ID)
	return nil
}
