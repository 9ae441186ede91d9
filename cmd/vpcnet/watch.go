package main

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var (
		dir      string
		debounce time.Duration
		lintOnly bool
	)

	cmd := &cobra.Command{
		Use:   "watch [stacks...]",
		Short: "Rebuild templates when declarations change",
		Long: `Watch monitors the repository's Go files and re-runs lint and build on
every change. Stack declarations are compiled into the binary, so the
rebuild runs in a fresh "go run" subprocess to pick up edits.

Examples:
    vpcnet watch
    vpcnet watch vpc-pluralsight-base --debounce 1s
    vpcnet watch --lint-only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args, dir, debounce, lintOnly)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Repository root to watch")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().BoolVar(&lintOnly, "lint-only", false, "Only run lint, skip build")

	return cmd
}

func runWatch(args []string, dir string, debounce time.Duration, lintOnly bool) error {
	// Fail fast on a bad stack name before entering the loop.
	if _, err := resolveStacks(args); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	root, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := addDirRecursive(watcher, root); err != nil {
		return fmt.Errorf("watching %s: %w", root, err)
	}
	fmt.Printf("Watching: %s\n", root)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("Running initial lint/build...")
	runLintAndBuild(root, args, lintOnly)

	var debounceTimer *time.Timer
	rebuildChan := make(chan struct{}, 1)

	fmt.Println("\nWatching for changes... (Ctrl+C to stop)")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !strings.HasSuffix(event.Name, ".go") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, func() {
				select {
				case rebuildChan <- struct{}{}:
				default:
				}
			})

		case <-rebuildChan:
			fmt.Printf("\n[%s] Change detected, rebuilding...\n", time.Now().Format("15:04:05"))
			runLintAndBuild(root, args, lintOnly)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// addDirRecursive adds a directory and all subdirectories to the watcher.
func addDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			base := filepath.Base(path)
			if strings.HasPrefix(base, ".") && path != dir {
				return filepath.SkipDir
			}
			if base == "vendor" || strings.HasPrefix(base, "_") {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

// runLintAndBuild re-executes the CLI through "go run" so edited
// declarations are recompiled.
func runLintAndBuild(root string, args []string, lintOnly bool) {
	if !runSubcommand(root, append([]string{"lint"}, args...)) {
		fmt.Println("Lint failed, skipping build")
		return
	}
	fmt.Println("Lint passed")

	if lintOnly {
		return
	}
	runSubcommand(root, append([]string{"build"}, args...))
}

func runSubcommand(root string, cliArgs []string) bool {
	goArgs := append([]string{"run", "./cmd/vpcnet"}, cliArgs...)
	cmd := exec.Command("go", goArgs...)
	cmd.Dir = root
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return false
	}
	return true
}
