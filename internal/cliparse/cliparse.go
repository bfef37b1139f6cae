package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"AmISober/internal/config"
	"AmISober/internal/input"
)

// Commands understood by the CLI. The first is the default.
const (
	CommandEstimate = "estimate"
	CommandTable    = "table"
	CommandDrinks   = "drinks"
	CommandWatch    = "watch"
)

// ErrUnknownCommand is returned for a command word that is not recognized.
var ErrUnknownCommand = errors.New("unknown command")

// Options is the parsed command line.
type Options struct {
	Command    string
	ConfigPath string
	LogLevel   string

	weightKg     float64
	sex          string
	beverage     string
	glasses      float64
	abvPercent   float64
	elapsedHours float64
	set          map[string]bool
}

// ParseFlags parses "[command] [flags]". Usage and errors go to errOut.
func ParseFlags(args []string, errOut io.Writer) (Options, error) {
	opts := Options{Command: CommandEstimate, set: map[string]bool{}}

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		opts.Command = strings.ToLower(args[0])
		args = args[1:]
	}
	switch opts.Command {
	case CommandEstimate, CommandTable, CommandDrinks, CommandWatch:
	default:
		return Options{}, fmt.Errorf("%w: %q", ErrUnknownCommand, opts.Command)
	}

	fs := flag.NewFlagSet("amisober "+opts.Command, flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&opts.ConfigPath, "config", "", "Config file path (default CONFIG_PATH or "+config.DefaultPath+")")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	fs.Float64Var(&opts.weightKg, "w", 0, fmt.Sprintf("Body weight in kg (%d-%d)", input.MinWeightKg, input.MaxWeightKg))
	fs.StringVar(&opts.sex, "sex", "", "male or female")
	fs.StringVar(&opts.beverage, "drink", "", "Beverage key (see the drinks command)")
	fs.Float64Var(&opts.glasses, "n", 0, fmt.Sprintf("Glasses consumed (%d-%d)", input.MinGlassCount, input.MaxGlassCount))
	fs.Float64Var(&opts.abvPercent, "abv", 0, fmt.Sprintf("ABV %% (%d-%d), default from the drink", input.MinAbvPercent, input.MaxAbvPercent))
	fs.Float64Var(&opts.elapsedHours, "t", 0, fmt.Sprintf("Hours since drinking began (0-%d, step %g)", input.MaxElapsedHours, input.ElapsedStep))

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if fs.NArg() > 0 {
		return Options{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	// Fall back to environment variables
	if opts.ConfigPath == "" {
		opts.ConfigPath = os.Getenv("CONFIG_PATH")
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath
	}

	return opts, nil
}

// Apply overwrites raw with every form flag given on the command line.
func (o Options) Apply(raw *input.RawInput) {
	if o.set["w"] {
		raw.WeightKg = o.weightKg
	}
	if o.set["sex"] {
		raw.Sex = o.sex
	}
	if o.set["drink"] {
		raw.Beverage = o.beverage
		// picking a drink resets the ABV to that drink's default
		raw.AbvPercent = nil
	}
	if o.set["n"] {
		raw.GlassCount = o.glasses
	}
	if o.set["abv"] {
		abv := o.abvPercent
		raw.AbvPercent = &abv
	}
	if o.set["t"] {
		raw.ElapsedHours = o.elapsedHours
	}
}
