// Where: internal/generator/renderer.go
// What: Render the registration stub from embedded templates.
// Why: Keep the emitted text shape in template files, not in Go strings.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/ProskuraPD/glyreg/internal/domain/registration"
)

const (
	stubTemplate               = "stub.inc.tmpl"
	nativeWrapperTemplate      = "native_wrapper"
	interpretedWrapperTemplate = "interpreted_wrapper"

	templateSetKey = "glyreg"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// Render returns the stub text for req. It performs no I/O.
func Render(req registration.Request, profile Profile) (string, error) {
	if err := profile.Validate(); err != nil {
		return "", err
	}
	wrapper, err := RenderWrapper(req.Implementation, profile)
	if err != nil {
		return "", err
	}

	data := stubTemplateData{
		Includes:        req.Includes,
		SupportIncludes: profile.SupportIncludes(),
		Helper:          profile.Helper,
		Instance:        profile.Instance,
		Name:            req.Name,
		Wrapper:         wrapper,
	}
	return renderTemplate(stubTemplate, data)
}

// RenderWrapper returns the single wrapper-construction expression for impl.
func RenderWrapper(impl registration.Implementation, profile Profile) (string, error) {
	if impl == nil {
		return "", &registration.ConfigurationError{Reason: "implementation is required"}
	}
	switch impl.Kind() {
	case registration.KindNative:
		return renderTemplate(nativeWrapperTemplate, wrapperTemplateData{
			Wrapper: profile.NativeWrapper,
			Target:  impl.Target(),
		})
	case registration.KindInterpreted:
		return renderTemplate(interpretedWrapperTemplate, wrapperTemplateData{
			Wrapper: profile.InterpretedWrapper,
			Target:  impl.Target(),
		})
	default:
		return "", fmt.Errorf("unsupported implementation kind: %s", impl.Kind())
	}
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplates() (*template.Template, error) {
	if value, ok := templateCache.Load(templateSetKey); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(templateSetKey).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	templateCache.Store(templateSetKey, tmpl)
	return tmpl, nil
}

type stubTemplateData struct {
	Includes        []string
	SupportIncludes []string
	Helper          string
	Instance        string
	Name            string
	Wrapper         string
}

type wrapperTemplateData struct {
	Wrapper string
	Target  string
}
