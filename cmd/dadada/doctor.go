package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	dadada "github.com/alnah/go-dadada"
	"github.com/alnah/go-dadada/internal/config"
	"github.com/alnah/go-dadada/internal/fileutil"
)

// ErrDoctorFailed is returned when at least one check reports an error.
var ErrDoctorFailed = errors.New("environment not ready")

// Check statuses.
const (
	statusOK    = "ok"
	statusWarn  = "warn"
	statusError = "error"
)

// doctorCheck is one diagnostic line.
type doctorCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string        `json:"status"` // "ready", "warnings", "errors"
	Platform string        `json:"platform"`
	Checks   []doctorCheck `json:"checks"`
}

func (r *doctorResult) add(name, status, detail string) {
	r.Checks = append(r.Checks, doctorCheck{Name: name, Status: status, Detail: detail})
}

// doctorProbe holds the lookups doctor depends on, replaceable in tests.
type doctorProbe struct {
	lookPath  func() (string, bool)
	version   func(path string) (string, error)
	getenv    func(string) string
	container func() (bool, string)
	tempDir   func() string
}

func defaultProbe() doctorProbe {
	return doctorProbe{
		lookPath: launcher.LookPath,
		version: func(path string) (string, error) {
			out, err := exec.Command(path, "--version").Output() // #nosec G204 -- browser path from launcher or env
			return strings.TrimSpace(string(out)), err
		},
		getenv:    os.Getenv,
		container: isContainer,
		tempDir:   os.TempDir,
	}
}

func newDoctorCmd(env *Environment) *cobra.Command {
	var jsonOutput bool
	var assetPath string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "doctor",
		Short: "Check the environment for PDF export and custom assets",
		Args:  noArgs,
		RunE: func(*cobra.Command, []string) error {
			result := runDoctor(defaultProbe(), assetPath)
			if jsonOutput {
				enc := json.NewEncoder(env.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				printDoctorResult(env.Stdout, result)
			}
			if result.Status == "errors" {
				return ErrDoctorFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	cmd.Flags().StringVar(&assetPath, "asset-path", "", "asset directory to verify (default: DADADA_ASSET_PATH)")
	cmd.SetFlagErrorFunc(usageError)
	return cmd
}

// runDoctor performs all diagnostic checks.
func runDoctor(p doctorProbe, assetPath string) *doctorResult {
	result := &doctorResult{Platform: runtime.GOOS + "/" + runtime.GOARCH}

	checkChrome(result, p)
	checkEnvironment(result, p)
	checkTempDir(result, p)
	checkConfig(result, p)
	if assetPath == "" {
		assetPath = p.getenv("DADADA_ASSET_PATH")
	}
	checkAssets(result, assetPath)

	result.Status = "ready"
	for _, c := range result.Checks {
		switch c.Status {
		case statusError:
			result.Status = "errors"
			return result
		case statusWarn:
			result.Status = "warnings"
		}
	}
	return result
}

// checkChrome detects a Chrome/Chromium installation. A missing browser is
// only a warning since HTML output does not need it.
func checkChrome(r *doctorResult, p doctorProbe) {
	path := p.getenv("ROD_BROWSER_BIN")
	if path == "" {
		var found bool
		if path, found = p.lookPath(); !found {
			r.add("chrome", statusWarn, "not found; --pdf will download Chromium or set ROD_BROWSER_BIN")
			return
		}
	}
	if !fileutil.FileExists(path) {
		r.add("chrome", statusError, "ROD_BROWSER_BIN points to a missing file: "+path)
		return
	}

	version, err := p.version(path)
	if err != nil {
		r.add("chrome", statusWarn, fmt.Sprintf("%s (version unknown: %v)", path, err))
		return
	}
	r.add("chrome", statusOK, fmt.Sprintf("%s (%s)", path, version))
}

// checkEnvironment detects containers and CI, where the sandbox must be off.
func checkEnvironment(r *doctorResult, p doctorProbe) {
	inContainer, hint := p.container()
	inCI := false
	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if p.getenv(v) != "" {
			inCI = true
			break
		}
	}

	switch {
	case (inContainer || inCI) && p.getenv("ROD_NO_SANDBOX") != "1":
		r.add("sandbox", statusWarn, "container/CI detected; set ROD_NO_SANDBOX=1")
	case inContainer:
		r.add("sandbox", statusOK, "disabled in container ("+hint+")")
	case inCI:
		r.add("sandbox", statusOK, "disabled in CI")
	default:
		r.add("sandbox", statusOK, "enabled")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if os.Getenv("DADADA_CONTAINER") == "1" {
		return true, "DADADA_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkTempDir verifies the temp directory used for PDF export is writable.
func checkTempDir(r *doctorResult, p doctorProbe) {
	dir := p.tempDir()
	f, err := os.CreateTemp(dir, "dadada-doctor-*")
	if err != nil {
		r.add("temp dir", statusError, "not writable: "+dir)
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	r.add("temp dir", statusOK, dir)
}

// checkConfig loads the config named by DADADA_CONFIG, if any.
func checkConfig(r *doctorResult, p doctorProbe) {
	name := p.getenv("DADADA_CONFIG")
	if name == "" {
		r.add("config", statusOK, "none (DADADA_CONFIG unset)")
		return
	}
	if _, err := config.LoadConfig(name); err != nil {
		r.add("config", statusError, err.Error())
		return
	}
	r.add("config", statusOK, name)
}

// checkAssets verifies a custom asset directory holds a usable template set.
func checkAssets(r *doctorResult, assetPath string) {
	if assetPath == "" {
		r.add("assets", statusOK, "embedded")
		return
	}
	loader, err := dadada.NewAssetLoader(assetPath)
	if err != nil {
		r.add("assets", statusError, err.Error())
		return
	}
	if _, err := dadada.NewAssembler(dadada.WithAssetLoader(loader)); err != nil {
		r.add("assets", statusError, err.Error())
		return
	}
	r.add("assets", statusOK, assetPath)
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintf(w, "dadada doctor (%s)\n\n", r.Platform)

	tbl := table.New("Check", "Status", "Detail").WithWriter(w)
	for _, c := range r.Checks {
		tbl.AddRow(c.Name, strings.ToUpper(c.Status), c.Detail)
	}
	tbl.Print()
	fmt.Fprintln(w)

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
