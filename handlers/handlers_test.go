package handlers

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/carprice/dashboard/charts"
	"github.com/carprice/dashboard/config"
	"github.com/carprice/dashboard/dashboard"
	"github.com/carprice/dashboard/dataset"
	"github.com/carprice/dashboard/ui"
)

const listings = `brand,transmission,price,mileage,model
Audi,Automatic,20000,30000,A4
Audi,Manual,18000,50000,A3
BMW,Automatic,25000,10000,3 Series
`

func newTestApp(t *testing.T, path string) *fiber.App {
	loader, err := dataset.NewLoader(dataset.NewSource(path, "listings", nil))
	require.NoError(t, err)
	h, err := New(loader)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
	h.Register(app)
	return app
}

func testApp(t *testing.T) *fiber.App {
	path := filepath.Join(t.TempDir(), "cars.csv")
	require.NoError(t, os.WriteFile(path, []byte(listings), 0o644))
	return newTestApp(t, path)
}

func missingDataApp(t *testing.T) *fiber.App {
	return newTestApp(t, filepath.Join(t.TempDir(), "missing.csv"))
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	return do(t, app, httptest.NewRequest(http.MethodGet, target, nil))
}

func TestHomeDefaultsToFirstBrand(t *testing.T) {
	resp, body := get(t, testApp(t), "/")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, body, "🚗 Used Car Price Analytics")
	assert.Contains(t, body, "Price Distribution for Audi")
	assert.Contains(t, body, "$19,000")

	var brandCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == cookieLastBrand {
			brandCookie = c
		}
	}
	require.NotNil(t, brandCookie)
	assert.Equal(t, "Audi", brandCookie.Value)
}

func TestDashboardScenarios(t *testing.T) {
	app := testApp(t)

	tests := []struct {
		name    string
		target  string
		want    []string
		notWant []string
	}{
		{
			name:   "audi all",
			target: "/dashboard?brand=Audi&transmission=All",
			want:   []string{"$19,000", "40,000 miles", ">2<"},
		},
		{
			name:   "audi manual",
			target: "/dashboard?brand=Audi&transmission=Manual",
			want:   []string{"$18,000", "50,000 miles", ">1<"},
		},
		{
			name:    "no matches",
			target:  "/dashboard?brand=BMW&transmission=Manual",
			want:    []string{"N/A", ">0<", "Price Distribution for BMW"},
			notWant: []string{"NaN"},
		},
		{
			name:   "raw data",
			target: "/dashboard?brand=BMW&transmission=All&raw=on",
			want:   []string{`id="raw-data"`, "3 Series", "25000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, app, tt.target)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Contains(t, body, `id="dashboard"`)
			assert.NotContains(t, body, "<html")
			for _, w := range tt.want {
				assert.Contains(t, body, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, body, w)
			}
		})
	}
}

func TestDashboardFallsBackToPreviousBrand(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard?brand=Toyota", nil)
	req.AddCookie(&http.Cookie{Name: cookieLastBrand, Value: "BMW"})

	_, body := do(t, testApp(t), req)

	assert.Contains(t, body, "Price Distribution for BMW")
	assert.Contains(t, body, "$25,000")
}

func TestCharts(t *testing.T) {
	app := testApp(t)

	t.Run("png", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/charts/price-distribution?brand=Audi&transmission=All", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))

		img, err := png.Decode(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, config.ChartWidth, img.Bounds().Dx())
		assert.Equal(t, config.ChartHeight, img.Bounds().Dy())
	})

	t.Run("webp scaled", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/charts/price-vs-mileage?brand=Audi&format=webp&w=400", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, "image/webp", resp.Header.Get(fiber.HeaderContentType))

		img, err := webp.Decode(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, 400, img.Bounds().Dx())
	})

	t.Run("empty selection renders placeholder", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/charts/price-vs-mileage?brand=BMW&transmission=Manual", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			_, err = png.Decode(resp.Body)
			require.NoError(t, err)
		}
	})

	t.Run("bad requests", func(t *testing.T) {
		tests := []struct {
			name   string
			target string
			want   int
		}{
			{name: "unknown chart", target: "/charts/pie", want: fiber.StatusNotFound},
			{name: "unknown format", target: "/charts/price-distribution?format=gif", want: fiber.StatusBadRequest},
			{name: "zero width", target: "/charts/price-distribution?w=0", want: fiber.StatusBadRequest},
			{name: "huge width", target: "/charts/price-distribution?w=100000", want: fiber.StatusBadRequest},
			{name: "non numeric width", target: "/charts/price-distribution?w=big", want: fiber.StatusBadRequest},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp, _ := get(t, app, tt.target)
				assert.Equal(t, tt.want, resp.StatusCode)
			})
		}
	})
}

func TestExportCSV(t *testing.T) {
	resp, body := get(t, testApp(t), "/export.csv?brand=Audi&transmission=Manual")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "cars_Audi_Manual.csv")
	assert.Equal(t, "brand,transmission,price,mileage,model\nAudi,Manual,18000,50000,A3\n", body)
}

func TestSummary(t *testing.T) {
	app := testApp(t)

	t.Run("matches", func(t *testing.T) {
		resp, body := get(t, app, "/api/summary?brand=Audi&transmission=All")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got SummaryResponse
		require.NoError(t, json.Unmarshal([]byte(body), &got))
		assert.Equal(t, 2, got.Count)
		require.NotNil(t, got.AvgPrice)
		assert.Equal(t, 19000.0, *got.AvgPrice)
		assert.Equal(t, "40,000 miles", got.AvgMileageDisplay)
	})

	t.Run("no matches", func(t *testing.T) {
		_, body := get(t, app, "/api/summary?brand=BMW&transmission=Manual")

		assert.JSONEq(t, `{
			"brand": "BMW",
			"transmission": "Manual",
			"count": 0,
			"avg_price": null,
			"avg_mileage": null,
			"avg_price_display": "N/A",
			"avg_mileage_display": "N/A"
		}`, body)
	})
}

func TestHealth(t *testing.T) {
	resp, body := get(t, testApp(t), "/health")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, "up", got["dataset"])
	assert.Equal(t, 3.0, got["rows"])
}

func TestMissingDataset(t *testing.T) {
	app := missingDataApp(t)

	t.Run("page shows only the error", func(t *testing.T) {
		resp, body := get(t, app, "/")
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.Contains(t, body, ui.DataErrorMessage)
		assert.NotContains(t, body, "Filter Options")
		assert.NotContains(t, body, "Average Price")
	})

	t.Run("htmx partial swaps in the error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard?brand=Audi", nil)
		req.Header.Set("HX-Request", "true")
		resp, body := do(t, app, req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, ui.DataErrorMessage)
	})

	t.Run("summary", func(t *testing.T) {
		resp, body := get(t, app, "/api/summary")
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.JSONEq(t, `{"error": "`+ui.DataErrorMessage+`"}`, body)
	})

	t.Run("chart", func(t *testing.T) {
		resp, body := get(t, app, "/charts/price-distribution")
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.Contains(t, body, ui.DataErrorMessage)
	})

	t.Run("health", func(t *testing.T) {
		resp, _ := get(t, app, "/health")
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestSchemaErrorNamesColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cars.csv")
	require.NoError(t, os.WriteFile(path, []byte("brand,price,mileage\nAudi,1,2\n"), 0o644))
	app := newTestApp(t, path)

	t.Run("page", func(t *testing.T) {
		resp, body := get(t, app, "/")
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
		assert.Contains(t, body, "transmission")
		assert.NotContains(t, body, dir)
	})

	t.Run("summary is json", func(t *testing.T) {
		resp, body := get(t, app, "/api/summary")
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/json")
		assert.JSONEq(t, `{"error": "Dataset is missing required column \"transmission\""}`, body)
	})

	t.Run("health", func(t *testing.T) {
		resp, body := get(t, app, "/health")
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.Contains(t, body, "transmission")
		assert.NotContains(t, body, dir)
	})
}

func TestUnparseableDatasetHidesDetails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cars.csv")
	require.NoError(t, os.WriteFile(path, []byte("brand,transmission,price,mileage\n\"Audi,Manual,1,2\n"), 0o644))
	app := newTestApp(t, path)

	resp, body := get(t, app, "/")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, "Internal Server Error")
	assert.NotContains(t, body, dir)
	assert.NotContains(t, body, "quote")

	resp, body = get(t, app, "/api/summary")
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Internal Server Error"}`, body)
}

func TestHeaderOnlyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cars.csv")
	require.NoError(t, os.WriteFile(path, []byte("brand,transmission,price,mileage\n"), 0o644))
	app := newTestApp(t, path)

	t.Run("page", func(t *testing.T) {
		resp, body := get(t, app, "/")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "N/A")
		assert.Contains(t, body, ">0<")
		assert.NotContains(t, body, "NaN")
	})

	t.Run("summary", func(t *testing.T) {
		resp, body := get(t, app, "/api/summary")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{
			"brand": "",
			"transmission": "All",
			"count": 0,
			"avg_price": null,
			"avg_mileage": null,
			"avg_price_display": "N/A",
			"avg_mileage_display": "N/A"
		}`, body)
	})

	t.Run("charts", func(t *testing.T) {
		for _, kind := range []charts.Kind{charts.KindPriceDistribution, charts.KindPriceVsMileage} {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/charts/"+string(kind), nil), -1)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, kind)
			_, err = png.Decode(resp.Body)
			require.NoError(t, err)
		}
	})

	t.Run("export", func(t *testing.T) {
		resp, body := get(t, app, "/export.csv")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "brand,transmission,price,mileage\n", body)
	})
}

func TestAdminCache(t *testing.T) {
	app := testApp(t)
	get(t, app, "/")

	resp, body := get(t, app, "/admin/cache")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Dataset Cache")
	assert.Contains(t, body, "Chart Cache")
	assert.Contains(t, body, "<html")

	req := httptest.NewRequest(http.MethodGet, "/admin/cache", nil)
	req.Header.Set("HX-Request", "true")
	_, body = do(t, app, req)
	assert.NotContains(t, body, "<html")

	resp, body = do(t, app, httptest.NewRequest(http.MethodPost, "/api/admin/cache/clear", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="admin-section-content"`)

	resp, _ = get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSelectionFromRequest(t *testing.T) {
	app := fiber.New()
	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	defer app.ReleaseCtx(ctx)

	ctx.Request().SetRequestURI("/dashboard?brand=Mercedes+Benz&transmission=Manual&raw=on")
	ctx.Request().Header.SetCookie(cookieLastBrand, "Mercedes%20Benz")
	ctx.Request().Header.SetCookie(cookieLastTransmission, "All")

	assert.Equal(t, dashboard.Selection{Brand: "Mercedes Benz", Transmission: "Manual", ShowRaw: true}, selectionFromRequest(ctx))
	assert.Equal(t, dashboard.Selection{Brand: "Mercedes Benz", Transmission: "All"}, getCookieSelection(ctx))
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"1", true},
		{"on", true},
		{"true", true},
		{"off", false},
		{"0", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFlag(tt.in))
		})
	}
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "cars_Audi_All.csv", exportFilename("Audi", "All"))
	assert.Equal(t, "cars_Mercedes-Benz_Semi-Auto.csv", exportFilename("Mercedes Benz", "Semi-Auto"))
	assert.Equal(t, "cars_-etc-passwd_All.csv", exportFilename("../etc/passwd", "All"))
}

func TestChartKey(t *testing.T) {
	sel := dashboard.Selection{Brand: "Audi", Transmission: "All", ShowRaw: true}
	assert.Equal(t, "price-distribution|Audi|All|webp|400", chartKey(charts.KindPriceDistribution, sel, charts.WebP, 400))
}
