package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"LocalSketch/internal/config"
	lnet "LocalSketch/internal/net"
	"LocalSketch/internal/state"
	"LocalSketch/internal/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const appID = "io.localsketch"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	args := os.Args
	if len(args) > 1 && strings.HasPrefix(args[1], lnet.CustomURLScheme) {
		runViewer(cfg, args[1])
	} else {
		runHost(cfg)
	}
}

func runHost(cfg config.Config) {
	log.Println("Starting as HOST")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	editor := state.NewEditor(cfg.Editor)
	status := "Mirror off"

	if cfg.Mirror {
		hub := lnet.NewHub()
		editor.OnChange = func(shapes []state.Shape) {
			if err := hub.Publish(shapes); err != nil {
				log.Printf("[MIRROR] Publish failed: %v", err)
			}
		}
		go func() {
			if err := lnet.Serve(ctx, cfg.MirrorPort, hub); err != nil {
				log.Printf("[MIRROR] Server stopped: %v", err)
			}
		}()

		server, err := lnet.Advertise(cfg.MirrorPort)
		if err != nil {
			log.Printf("[MDNS] Advertising failed, viewers need the link: %v", err)
		} else {
			defer server.Shutdown()
		}
		status = "Share link: " + lnet.ShareLink(lnet.OutgoingIP(), cfg.MirrorPort)
	}

	a := app.NewWithID(appID)
	w, _ := ui.NewEditorWindow(a, editor, ui.Options{
		Width:  cfg.WindowWidth,
		Height: cfg.WindowHeight,
		Status: status,
	})
	w.ShowAndRun()
}

func runViewer(cfg config.Config, link string) {
	log.Println("Starting as VIEWER")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := app.NewWithID(appID)
	viewer := ui.NewViewerWidget()
	w, status := ui.NewViewerWindow(a, viewer, ui.Options{
		Width:  cfg.WindowWidth,
		Height: cfg.WindowHeight,
		Status: "Connecting...",
	})

	go func() {
		err := watch(ctx, link, func(shapes []state.Shape) {
			fyne.Do(func() { viewer.SetShapes(shapes) })
		}, func(text string) {
			fyne.Do(func() { status.SetText(text) })
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("[MIRROR] Viewer stopped: %v", err)
			fyne.Do(func() { status.SetText(fmt.Sprintf("Disconnected: %v", err)) })
		}
	}()

	w.ShowAndRun()
}

// watch resolves the link, browsing the LAN when it names no host, and
// follows the mirror until ctx ends or the host goes away.
func watch(ctx context.Context, link string, onBoard func([]state.Shape), setStatus func(string)) error {
	url, err := lnet.MirrorURL(link)
	if err != nil {
		return err
	}
	if url == "" {
		setStatus("Looking for a board on the network...")
		links, err := lnet.Browse(2 * time.Second)
		if err != nil {
			return fmt.Errorf("browse: %w", err)
		}
		if len(links) == 0 {
			return errors.New("no board found on the network")
		}
		link = links[0]
		if url, err = lnet.MirrorURL(link); err != nil {
			return err
		}
	}
	setStatus("Watching " + link)
	return lnet.Watch(ctx, url, onBoard)
}
