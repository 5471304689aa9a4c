// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/MKhiriev/go-mesto/internal/adapter"
	"github.com/MKhiriev/go-mesto/internal/app"
	"github.com/MKhiriev/go-mesto/internal/config"
	"github.com/MKhiriev/go-mesto/internal/logger"
	"github.com/MKhiriev/go-mesto/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App dispatches command-line commands to the Mesto API.
type App struct {
	adapter adapter.MestoAdapter
	tokens  tokenFile
	out     io.Writer
	logger  *logger.Logger
}

// NewApp returns an App that talks to the API through mestoAdapter, keeps
// the session token in cfg.TokenFile and prints results to out.
func NewApp(mestoAdapter adapter.MestoAdapter, cfg *config.ClientConfig, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: mestoAdapter,
		tokens:  tokenFile{path: cfg.TokenFile},
		out:     out,
		logger:  logger,
	}
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	cmd, ok := a.commands()[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token != "" {
		a.adapter.SetToken(token)
	}

	a.logger.Debug().Str("command", args[0]).Bool("has_token", token != "").Msg("running command")

	return cmd.run(ctx, args[1:])
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"signup":         {usage: "signup -email E -password P [-name N] [-about A] [-avatar URL]", run: a.signUp},
		"signin":         {usage: "signin -email E -password P", run: a.signIn},
		"logout":         {usage: "logout", run: a.logout},
		"me":             {usage: "me", run: a.me},
		"users":          {usage: "users", run: a.users},
		"user":           {usage: "user ID", run: a.user},
		"update-profile": {usage: "update-profile -name N -about A", run: a.updateProfile},
		"update-avatar":  {usage: "update-avatar URL", run: a.updateAvatar},
		"cards":          {usage: "cards", run: a.cards},
		"create-card":    {usage: "create-card -name N -link URL", run: a.createCard},
		"delete-card":    {usage: "delete-card ID", run: a.cardByID(a.adapter.DeleteCard)},
		"like":           {usage: "like ID", run: a.cardByID(a.adapter.LikeCard)},
		"unlike":         {usage: "unlike ID", run: a.cardByID(a.adapter.UnlikeCard)},
	}
}

func (a *App) signUp(ctx context.Context, args []string) error {
	var req models.SignUpRequest
	fs := a.flagSet("signup")
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.About, "about", "", "profile description")
	fs.StringVar(&req.Avatar, "avatar", "", "avatar URL")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	user, err := a.adapter.SignUp(ctx, req)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) signIn(ctx context.Context, args []string) error {
	var req models.SignInRequest
	fs := a.flagSet("signin")
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if err := a.adapter.SignIn(ctx, req); err != nil {
		return err
	}
	if err := a.tokens.Save(a.adapter.Token()); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: app.MsgSignedIn})
}

func (a *App) logout(ctx context.Context, _ []string) error {
	if err := a.adapter.Logout(ctx); err != nil {
		return err
	}
	if err := a.tokens.Clear(); err != nil {
		return err
	}
	return a.print(models.MessageResponse{Message: app.MsgSignedOut})
}

func (a *App) me(ctx context.Context, _ []string) error {
	user, err := a.adapter.GetMe(ctx)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) users(ctx context.Context, _ []string) error {
	users, err := a.adapter.ListUsers(ctx)
	if err != nil {
		return err
	}
	return a.print(users)
}

func (a *App) user(ctx context.Context, args []string) error {
	id, err := singleArg("user", args)
	if err != nil {
		return err
	}

	user, err := a.adapter.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) updateProfile(ctx context.Context, args []string) error {
	var req models.ProfileUpdateRequest
	fs := a.flagSet("update-profile")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.About, "about", "", "profile description")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	user, err := a.adapter.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) updateAvatar(ctx context.Context, args []string) error {
	link, err := singleArg("update-avatar", args)
	if err != nil {
		return err
	}

	user, err := a.adapter.UpdateAvatar(ctx, models.AvatarUpdateRequest{Avatar: link})
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) cards(ctx context.Context, _ []string) error {
	cards, err := a.adapter.ListCards(ctx)
	if err != nil {
		return err
	}
	return a.print(cards)
}

func (a *App) createCard(ctx context.Context, args []string) error {
	var req models.CardCreateRequest
	fs := a.flagSet("create-card")
	fs.StringVar(&req.Name, "name", "", "card caption")
	fs.StringVar(&req.Link, "link", "", "photo URL")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	card, err := a.adapter.CreateCard(ctx, req)
	if err != nil {
		return err
	}
	return a.print(card)
}

func (a *App) cardByID(call func(ctx context.Context, cardID string) (models.Card, error)) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		id, err := singleArg("card", args)
		if err != nil {
			return err
		}

		card, err := call(ctx, id)
		if err != nil {
			return err
		}
		return a.print(card)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrUsage, fs.Args())
	}
	return nil
}

func singleArg(name string, args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("%w: %s expects exactly one argument", ErrUsage, name)
	}
	return args[0], nil
}

func (a *App) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func (a *App) printUsage() {
	cmds := a.commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	slices.Sort(names)

	fmt.Fprintln(a.out, "usage: mesto-client [flags] <command> [args]")
	fmt.Fprintln(a.out, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", cmds[name].usage)
	}
}
