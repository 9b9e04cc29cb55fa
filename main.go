package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"gloomdeep/pkg/engine/input"
	"gloomdeep/pkg/game/autopilot"
	"gloomdeep/pkg/game/generator"
	"gloomdeep/pkg/game/renderer"
	ebitenrenderer "gloomdeep/pkg/game/renderer/ebiten"
	"gloomdeep/pkg/game/renderer/tui"
	"gloomdeep/pkg/game/session"
	"gloomdeep/pkg/game/spectator"
	"gloomdeep/pkg/game/state"
)

func initGotext() {
	gotext.Configure("mo", "en_GB", "default")
}

func initLogging(verbose bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

func main() {
	rendererName := flag.String("renderer", "tui", "renderer backend: tui or ebiten")
	seed := flag.Int64("seed", 0, "dungeon seed (0 picks one from the clock)")
	depth := flag.Int("depth", 1, "starting dungeon depth")
	delay := flag.Duration("delay", autopilot.DefaultStepDelay, "autopilot step delay")
	hunger := flag.Bool("hunger", true, "enable hunger and starvation")
	pickupFlag := flag.String("pickup", "smart", "auto-pickup policy: off, gold, smart or all")
	watch := flag.String("watch", "", "spectator listen address, e.g. :8080 (disabled when empty)")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	initGotext()
	initLogging(*verbose)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.WithField("seed", *seed).Debug("seeding dungeon")

	opts := state.Options{
		HungerEnabled: *hunger,
		Pickup:        autopilot.ParsePickupMode(*pickupFlag),
	}

	g := generator.DefaultGenerator.Generate(*depth, rng, opts)
	g.AddMessage(gotext.Get("Welcome to the Gloomdeep!"), state.SeverityInfo)

	sess := session.New(g, *delay)

	if *watch != "" {
		hub := spectator.NewHub()
		go hub.Serve(*watch)
		sess.Observe(hub.Broadcast)
	}

	switch *rendererName {
	case "ebiten":
		runEbiten(sess)
	default:
		runTUI(sess)
	}
}

// runEbiten hands the loop to the Ebiten window
func runEbiten(sess *session.Session) {
	r := ebitenrenderer.New(sess)
	renderer.SetRenderer(r)
	renderer.Init()

	if err := r.Run(); err != nil {
		log.WithError(err).Fatal("renderer stopped")
	}
}

// frameInterval paces the terminal loop while the autopilot runs
const frameInterval = 30 * time.Millisecond

// runTUI drives the terminal loop: render, then either block on a key or,
// while the autopilot runs, poll briefly and advance the step clock.
func runTUI(sess *session.Session) {
	t := tui.New()
	renderer.SetRenderer(t)
	renderer.Init()

	for {
		renderer.RenderFrame(sess.Game, sess.Ctrl)

		if sess.Game.Finished {
			fmt.Println(gotext.Get("Press any key to leave."))
			input.GetKey()
			return
		}

		if sess.Active() {
			code := input.PollKey(frameInterval)
			if code == "" {
				sess.Tick(frameInterval)
				continue
			}
			if dispatch(sess, code) {
				return
			}
			continue
		}

		if dispatch(sess, input.GetKey()) {
			return
		}
	}
}

// dispatch maps one key code to an intent and runs it
func dispatch(sess *session.Session, code string) (quit bool) {
	raw := input.RawInput{
		Device:    input.DeviceTerminal,
		Code:      code,
		Timestamp: time.Now(),
	}
	intent := input.MapToIntent(input.NewDebouncedInput(raw))
	if intent.Action == input.ActionNone {
		return false
	}
	return sess.HandleAction(intent.Action)
}
