package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/meltforce/momentum/internal/api"
	"github.com/meltforce/momentum/internal/config"
	"github.com/meltforce/momentum/internal/forms"
	"github.com/meltforce/momentum/internal/session"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	email := flag.String("email", "", "account email (login)")
	password := flag.String("password", "", "account password (login); read from stdin when empty")
	version := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: momentum-auth [flags] login|logout|status\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println("momentum-auth", Version)
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sessions, err := session.OpenSQLite(cfg.Session.Dir)
	if err != nil {
		log.Error("failed to open session store", "error", err)
		os.Exit(1)
	}
	defer sessions.Close()

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, sessions, log)
	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.API.Timeout)
	defer cancel()

	switch cmd := flag.Arg(0); cmd {
	case "login":
		err = login(ctx, client, *email, *password)
	case "logout":
		err = client.Logout(ctx)
		if err == nil {
			fmt.Println("Signed out.")
		}
	case "status":
		err = status(ctx, client, sessions)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func login(ctx context.Context, client *api.Client, email, password string) error {
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("reading password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	creds, err := forms.Login{Email: email, Password: password}.Validate()
	if err != nil {
		return err
	}
	auth, err := client.Login(ctx, creds)
	if errors.Is(err, api.ErrUnauthorized) {
		return errors.New("invalid email or password")
	}
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s (%s).\n", auth.User.Username, auth.User.Email)
	return nil
}

// status reports the stored session and checks the token is still accepted.
func status(ctx context.Context, client *api.Client, sessions session.Store) error {
	sess, err := sessions.Load(ctx)
	if errors.Is(err, session.ErrNoSession) {
		fmt.Println("Not signed in.")
		return nil
	}
	if err != nil {
		return err
	}

	user, err := client.Profile(ctx)
	if errors.Is(err, api.ErrUnauthorized) {
		fmt.Println("Session expired; sign in again.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking session: %w", err)
	}
	fmt.Printf("Signed in as %s (%s) since %s.\n", user.Username, user.Email, sess.SavedAt.Format(time.DateTime))
	return nil
}
