// Package dev provides the preview server and live reload.
//
// The preview server consists of several components:
//
//   - Watcher: reports batches of changed content, static and config files
//   - Server: rebuilds the site and serves the export directory
//   - ReloadServer: notifies browsers of rebuilds via WebSocket
//
// # Usage
//
//	srv := dev.NewServer(dev.ServerOptions{
//	    Config: cfg,
//	    Build:  build,
//	})
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := srv.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Live Reload Protocol
//
// Served HTML pages get a script that connects to /_treesite/reload via
// WebSocket. Messages are JSON-encoded:
//
//	{"type": "reload"}                 // Triggers full page reload
//	{"type": "css"}                    // Reloads stylesheets only
//	{"type": "error", "error": "..."}  // Shows error overlay
//	{"type": "clear"}                  // Clears error overlay
package dev
