package gen

import (
	"fmt"
	"os"
	"strings"
)

// routeBootstrap seeds a route file that does not exist yet.
const routeBootstrap = "<?php\n\nuse Illuminate\\Support\\Facades\\Route;\n"

// controllerClass returns the fully qualified controller of a model.
func controllerClass(version, model string) string {
	return `\App\Http\Controllers\Api\` + versionDir(version) + `\` + model + "Controller"
}

// routeBlock renders the registrations of one resource. The export and
// restore routes precede apiResource so the resource show route does
// not capture them.
func routeBlock(model string, rc RouteConfig) string {
	var (
		ctrl = controllerClass(rc.Version, model)
		seg  = routeSegment(model)
		mw   string
		b    strings.Builder
	)
	if len(rc.Middleware) > 0 {
		mw = "\n        ->middleware(" + phpValue(rc.Middleware, "") + ")"
	}
	fmt.Fprintf(&b, "    Route::get(%s, [%s::class, 'export'])%s;\n", phpQuote(seg+"/export"), ctrl, mw)
	fmt.Fprintf(&b, "    Route::put(%s, [%s::class, 'restore'])%s;\n", phpQuote(seg+"/{id}/restore"), ctrl, mw)
	fmt.Fprintf(&b, "    Route::apiResource(%s, %s::class)%s;\n", phpQuote(seg), ctrl, mw)
	return b.String()
}

// appendRoutes returns content with the route block of model inserted
// above the marker. It reports false when the controller is already
// registered.
func appendRoutes(content, model string, rc RouteConfig) (string, bool) {
	if strings.Contains(content, controllerClass(rc.Version, model)+"::class") {
		return content, false
	}
	if !strings.Contains(content, rc.Marker) {
		content = strings.TrimRight(content, "\n") + "\n\n" +
			"Route::prefix(" + phpQuote(rc.Version) + ")->group(function () {\n" +
			rc.Marker + "\n});\n"
	}
	i := strings.Index(content, rc.Marker)
	at := strings.LastIndexByte(content[:i], '\n') + 1
	return content[:at] + routeBlock(model, rc) + content[at:], true
}

// AppendRoutes registers the routes of model in the route file at path.
// It is a no-op when the controller is already registered. A missing
// route file is created.
func AppendRoutes(path, model string, cfg *Config) (bool, error) {
	content, err := readRoutes(path)
	if err != nil {
		return false, err
	}
	out, changed := appendRoutes(content, model, cfg.Routes())
	if !changed {
		return false, nil
	}
	if err := writeAtomic(path, []byte(out)); err != nil {
		return false, NewGenerationError("routes", path, "cannot write route file", err)
	}
	return true, nil
}

func readRoutes(path string) (string, error) {
	b, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return routeBootstrap, nil
	case err != nil:
		return "", fmt.Errorf("read routes: %w", err)
	}
	return string(b), nil
}
