package dadada

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-dadada/internal/fileutil"
	"github.com/alnah/go-dadada/internal/process"
)

// Page sizes accepted by PageSettings.Size.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientations accepted by PageSettings.Orientation.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// DefaultPDFTimeout bounds page load and printing when no timeout is set.
const DefaultPDFTimeout = 30 * time.Second

const defaultMarginInches = 0.5

// paperSizes in inches, portrait.
var paperSizes = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures the printed page. Zero values mean letter,
// portrait and half-inch margins.
type PageSettings struct {
	Size        string
	Orientation string
	Margin      float64 // inches
}

// Validate rejects unknown sizes and orientations and negative margins.
func (p PageSettings) Validate() error {
	if _, ok := paperSizes[strings.ToLower(p.Size)]; p.Size != "" && !ok {
		return fmt.Errorf("%w: unknown page size %q", ErrInvalidOptions, p.Size)
	}
	switch strings.ToLower(p.Orientation) {
	case "", OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: unknown orientation %q", ErrInvalidOptions, p.Orientation)
	}
	if p.Margin < 0 {
		return fmt.Errorf("%w: negative margin", ErrInvalidOptions)
	}
	return nil
}

// printOptions converts p to Chrome's print parameters.
func (p PageSettings) printOptions() *proto.PagePrintToPDF {
	size := strings.ToLower(p.Size)
	if size == "" {
		size = PageSizeLetter
	}
	dims := paperSizes[size]
	width, height := dims[0], dims[1]
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		width, height = height, width
	}

	margin := p.Margin
	if margin == 0 {
		margin = defaultMarginInches
	}

	return &proto.PagePrintToPDF{
		PaperWidth:      &width,
		PaperHeight:     &height,
		MarginTop:       &margin,
		MarginBottom:    &margin,
		MarginLeft:      &margin,
		MarginRight:     &margin,
		PrintBackground: true,
	}
}

// PDFOption configures a PDFExporter.
type PDFOption func(*PDFExporter)

// WithPDFTimeout sets the page load and print timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithPDFTimeout(d time.Duration) PDFOption {
	if d <= 0 {
		panic("dadada: WithPDFTimeout duration must be positive")
	}
	return func(e *PDFExporter) { e.timeout = d }
}

// WithPageSettings sets the printed page layout.
func WithPageSettings(p PageSettings) PDFOption {
	return func(e *PDFExporter) { e.page = p }
}

// PDFExporter prints assembled HTML with headless Chrome through go-rod.
// The browser is launched on first use and reused until Close.
// Rod downloads Chromium on first run if none is found.
type PDFExporter struct {
	timeout  time.Duration
	page     PageSettings
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewPDFExporter creates a PDFExporter. No browser is started yet.
func NewPDFExporter(opts ...PDFOption) *PDFExporter {
	e := &PDFExporter{timeout: DefaultPDFTimeout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders html to PDF bytes. The HTML goes through a temporary file
// so inlined scripts run under a file:// origin.
func (e *PDFExporter) Export(ctx context.Context, html string) ([]byte, error) {
	if err := e.page.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(html, "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	if err := e.ensureBrowser(); err != nil {
		return nil, err
	}
	return e.renderFile(ctx, tmpPath)
}

func (e *PDFExporter) ensureBrowser() error {
	if e.browser != nil {
		return nil
	}

	l := launcher.New()
	// Pre-installed browser (Docker/containerized environments).
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		process.KillProcessGroup(l.PID())
		l.Cleanup()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	e.launcher, e.browser = l, browser
	return nil
}

func (e *PDFExporter) renderFile(ctx context.Context, path string) ([]byte, error) {
	page, err := e.browser.Page(proto.TargetCreateTarget{URL: "file://" + path})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	page = page.Context(ctx).Timeout(timeout)

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(e.page.printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdf, nil
}

// Close shuts the browser down and kills its process group.
// Safe to call more than once.
func (e *PDFExporter) Close() error {
	if e.browser == nil {
		return nil
	}
	err := e.browser.Close()
	if e.launcher != nil {
		process.KillProcessGroup(e.launcher.PID())
		e.launcher.Cleanup()
	}
	e.browser, e.launcher = nil, nil
	return err
}
