package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/amterp/ra"

	"github.com/amterp/filecolor/internal/config"
	"github.com/amterp/filecolor/internal/discovery"
	"github.com/amterp/filecolor/internal/model"
	"github.com/amterp/filecolor/internal/store"
)

// completionCtx provides lightweight store access for shell completion.
// Completion functions run during ParseOrExit, before NewApp() is called,
// so we can't use the full App. This initializes just enough to read the
// vault's settings.
type completionCtx struct {
	once      sync.Once
	globalCfg *model.GlobalConfig
	settings  *model.PluginSettings
	err       error
}

var compCtx completionCtx

func initCompletionCtx() {
	compCtx.once.Do(func() {
		globalCfg, err := store.NewGlobalStore().Load()
		if err != nil {
			// Graceful degradation: no vault-name completions if global config is broken
			globalCfg = nil
		}
		compCtx.globalCfg = globalCfg

		result, err := discovery.ResolveVault(vaultFromArgs(os.Args), globalCfg)
		if err != nil || result == nil {
			compCtx.err = fmt.Errorf("no vault found")
			return
		}

		paths := config.NewPaths(result.VaultRoot)
		compCtx.settings, compCtx.err = store.NewSettingsStore(paths.SettingsPath()).Load()
	})
}

// completeColors returns palette ids and names matching the given prefix.
func completeColors(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()
	if compCtx.err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}
	return colorCandidates(compCtx.settings.Palette, toComplete), ra.CompletionDirectiveNoFileComp
}

// completeAssignedPaths returns assigned paths matching the given prefix.
func completeAssignedPaths(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()
	if compCtx.err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	var result []string
	for _, a := range compCtx.settings.FileColors {
		if strings.HasPrefix(a.Path, toComplete) {
			result = append(result, a.Path)
		}
	}
	return result, ra.CompletionDirectiveNoFileComp
}

// completeOptions returns option aliases matching the given prefix.
func completeOptions(toComplete string) ([]string, ra.CompletionDirective) {
	return optionCandidates(toComplete), ra.CompletionDirectiveNoFileComp
}

// completeVaults returns registered vault names matching the given prefix.
func completeVaults(toComplete string) ([]string, ra.CompletionDirective) {
	globalCfg, err := store.NewGlobalStore().Load()
	if err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	var result []string
	for name := range globalCfg.Vaults {
		if strings.HasPrefix(name, toComplete) {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result, ra.CompletionDirectiveNoFileComp
}

// colorCandidates lists ids and names, skipping names shared by several
// colors since those cannot be resolved by name.
func colorCandidates(palette []model.PaletteColor, toComplete string) []string {
	nameCount := make(map[string]int)
	for _, c := range palette {
		nameCount[strings.ToLower(c.Name)]++
	}

	var result []string
	for _, c := range palette {
		if strings.HasPrefix(c.ID, toComplete) {
			result = append(result, c.ID)
		}
		if c.Name != "" && nameCount[strings.ToLower(c.Name)] == 1 &&
			strings.HasPrefix(strings.ToLower(c.Name), strings.ToLower(toComplete)) {
			result = append(result, c.Name)
		}
	}
	return result
}

func optionCandidates(toComplete string) []string {
	var result []string
	for _, key := range model.OptionKeys {
		if alias := key.Info().Alias; strings.HasPrefix(alias, toComplete) {
			result = append(result, alias)
		}
	}
	return result
}

// vaultFromArgs scans the argument list for an explicit -V/--vault flag value.
func vaultFromArgs(args []string) string {
	for i, arg := range args {
		// --vault=value or -V=value (skip empty values so fallback logic runs)
		if strings.HasPrefix(arg, "--vault=") {
			if v := strings.TrimPrefix(arg, "--vault="); v != "" {
				return v
			}
		}
		if strings.HasPrefix(arg, "-V=") {
			if v := strings.TrimPrefix(arg, "-V="); v != "" {
				return v
			}
		}
		// --vault value or -V value
		if (arg == "--vault" || arg == "-V") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// registerCompletion adds the "filecolor completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	default:
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
