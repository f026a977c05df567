// Command rheia is a single-document terminal text editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/rheia"
	"github.com/iw2rmb/rheia/fileservice"
	"github.com/iw2rmb/rheia/fileservice/native"
	"github.com/iw2rmb/rheia/internal/app"
	"github.com/iw2rmb/rheia/internal/config"
	"github.com/iw2rmb/rheia/internal/logging"
	"github.com/iw2rmb/rheia/internal/watch"
	"github.com/iw2rmb/rheia/session"
)

type options struct {
	configPath string
	theme      string
	dialog     string
	logFile    string
	logLevel   string
	noWatch    bool
	version    bool
	file       string
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.StringVar(&opts.theme, "theme", "", "Color theme")
	flag.StringVar(&opts.dialog, "dialog", "", "File dialogs: prompt or native")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.noWatch, "no-watch", false, "Do not watch the open file for external changes")
	flag.BoolVar(&opts.version, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rheia [options] [file]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.file = flag.Arg(0)
	return opts
}

// settings layers the config file, the environment and the flags.
func settings(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
	if opts.dialog != "" {
		cfg.Dialog = opts.dialog
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noWatch {
		cfg.Watch = false
	}
	if opts.file != "" {
		abs, err := filepath.Abs(opts.file)
		if err != nil {
			return cfg, err
		}
		cfg.DefaultFile = abs
	}
	return cfg, cfg.Validate()
}

func run(opts options) error {
	cfg, err := settings(opts)
	if err != nil {
		return err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Setup(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		dialogs fileservice.Dialogs
		prompt  *fileservice.Prompt
	)
	if cfg.Dialog == config.DialogNative {
		dialogs = native.Dialogs{StartDir: cfg.StartDir}
	} else {
		prompt = fileservice.NewPrompt(cfg.StartDir)
		dialogs = prompt
	}
	files := fileservice.Combine(dialogs, fileservice.Disk{})

	sess, startup := session.New(files, session.Options{
		DefaultPath:  cfg.DefaultFile,
		Theme:        cfg.ThemeValue(),
		HistoryLimit: cfg.HistoryLimit,
		Logger:       logger,
	})

	var watcher *watch.Watcher
	if cfg.Watch {
		watcher, err = watch.New(watch.DefaultDebounce)
		if err != nil {
			logger.Warn("file watching disabled", "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	logger.Info("starting", "version", rheia.Version(), "file", cfg.DefaultFile, "dialog", cfg.Dialog)

	m := app.New(app.Options{
		Session:     sess,
		StartupTask: startup,
		Prompt:      prompt,
		Watcher:     watcher,
		LineNumbers: cfg.LineNumbers,
		TabWidth:    cfg.TabWidth,
		DropOnPaste: cfg.DropOnPaste,
		Context:     ctx,
		Logger:      logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func main() {
	opts := parseFlags()
	if opts.version {
		fmt.Printf("rheia %s\n", rheia.VersionTag())
		return
	}
	if err := run(opts); err != nil {
		_, _ = os.Stderr.WriteString("rheia: " + err.Error() + "\n")
		os.Exit(1)
	}
}
