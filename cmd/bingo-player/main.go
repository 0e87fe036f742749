package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"video-bingo/internal/card"
	"video-bingo/internal/catalog"
	"video-bingo/internal/config"
	"video-bingo/internal/devicestore"
	"video-bingo/internal/logging"
	"video-bingo/internal/player"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	if err := logging.Init(logCfg); err != nil {
		panic(err)
	}
	defer logging.Close()

	cfg, err := config.LoadPlayer()
	if err != nil {
		log.Fatal().Err(err).Msg("load player config failed")
	}
	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("player exited")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.PlayerConfig, in io.Reader, out io.Writer) error {
	playlists, err := catalog.LoadPlaylistsFile(cfg.PlaylistsFile)
	if err != nil {
		return fmt.Errorf("load playlists: %w", err)
	}
	kv, err := devicestore.OpenSQLite(ctx, cfg.DeviceDB)
	if err != nil {
		return err
	}
	defer kv.Close()

	fmt.Fprintln(out, "Loading event...")
	phase, ev, err := player.Load(ctx, player.NewClient(cfg.ServerURL, cfg.HTTPTimeout), cfg.EventCode)
	switch phase {
	case player.PhaseNotFound:
		fmt.Fprintf(out, "There is no event running with the code %q. Check the link or ask your host for the correct QR code.\n", cfg.EventCode)
		return nil
	case player.PhaseError:
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s, err := player.NewSession(ctx, cfg.EventCode, ev, playlists, card.NewPersistence(kv), rng)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n", ev.Name)
	printGames(out, s)
	_ = player.Render(out, s)
	return loop(ctx, s, in, out)
}

const help = `commands:
  games            list games
  play <game>      switch to a game (e.g. play game2)
  tap <1-25>       mark or unmark a square
  reset            clear marks on this card
  new              deal a new card for this game
  show             print the card
  quit`

func loop(ctx context.Context, s *player.Session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			fmt.Fprint(out, "> ")
			continue
		}
		var err error
		switch fields[0] {
		case "games":
			printGames(out, s)
		case "play":
			if len(fields) < 2 {
				err = fmt.Errorf("usage: play <game>")
				break
			}
			if err = s.Select(fields[1]); err == nil {
				err = player.Render(out, s)
			}
		case "tap":
			var n int
			if len(fields) < 2 {
				err = fmt.Errorf("usage: tap <1-25>")
				break
			}
			if n, err = strconv.Atoi(fields[1]); err != nil || n < 1 || n > card.Size {
				err = fmt.Errorf("square must be 1-25")
				break
			}
			if _, err = s.Toggle(n - 1); err == nil {
				err = player.Render(out, s)
			}
		case "reset":
			if err = s.ResetProgress(); err == nil {
				err = player.Render(out, s)
			}
		case "new":
			if err = s.Regenerate(); err == nil {
				err = player.Render(out, s)
			}
		case "show":
			err = player.Render(out, s)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintln(out, help)
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		fmt.Fprint(out, "> ")
	}
	return sc.Err()
}

func printGames(out io.Writer, s *player.Session) {
	current := ""
	if g, _, ok := s.Current(); ok {
		current = g.ID
	}
	for _, g := range s.Games() {
		marker := " "
		if g.ID == current {
			marker = ">"
		}
		line := fmt.Sprintf("%s %-6s %s · %s", marker, g.ID, g.Name, g.DisplayMode)
		if g.PatternName != "" {
			line += " · " + g.PatternName
		}
		fmt.Fprintln(out, line)
	}
}
