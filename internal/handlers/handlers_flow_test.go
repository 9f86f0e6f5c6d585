package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/RosaneTech/crm-agenda/internal/config"
	infraRepo "github.com/RosaneTech/crm-agenda/internal/infra/repository"
	"github.com/RosaneTech/crm-agenda/internal/models"
	"github.com/RosaneTech/crm-agenda/internal/routes"
)

// Sobe o router real sobre um SQLite temporário. O http.Client tem
// cookie jar e segue os redirects, então cada resposta final já é a
// página seguinte, com as flashes consumidas.
func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB, *http.Client) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.sqlite3") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Client{},
		&models.Note{},
		&models.Appointment{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	r := gin.New()
	cfg := &config.Config{SessionSecret: "test-secret"}
	routes.RegisterRoutes(r, db, cfg)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}

	return srv, db, &http.Client{Jar: jar}
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) (string, string) {
	t.Helper()

	resp, err := client.PostForm(target, form)
	if err != nil {
		t.Fatalf("POST %s failed: %v", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST %s: final status = %d, expected 200 after redirect", target, resp.StatusCode)
	}

	return string(body), resp.Request.URL.Path
}

func getPage(t *testing.T, client *http.Client, target string) string {
	t.Helper()

	resp, err := client.Get(target)
	if err != nil {
		t.Fatalf("GET %s failed: %v", target, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status = %d, expected 200", target, resp.StatusCode)
	}

	return string(body)
}

func seedClient(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()

	id, err := infraRepo.NewClientGormRepository(db).Create(context.Background(), name, "111", "")
	if err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	return id
}

func TestCreateClientEmptyNameFlashesAndKeepsCount(t *testing.T) {
	srv, db, client := newTestServer(t)

	body, path := postForm(t, client, srv.URL+"/clients/new", url.Values{
		"name":  {"   "},
		"phone": {"111"},
	})

	if path != "/clients/new" {
		t.Errorf("redirected to %s, expected back to the form", path)
	}
	if !strings.Contains(body, "Informe o nome do cliente.") {
		t.Error("flash message not shown after rejected create")
	}

	var count int64
	db.Model(&models.Client{}).Count(&count)
	if count != 0 {
		t.Errorf("client count = %d, expected 0 after rejected create", count)
	}
}

func TestCreateClientSuccessRedirectsToListing(t *testing.T) {
	srv, db, client := newTestServer(t)

	body, path := postForm(t, client, srv.URL+"/clients/new", url.Values{
		"name":  {"Maria"},
		"phone": {"111"},
		"email": {"m@x.com"},
	})

	if path != "/clients" {
		t.Errorf("redirected to %s, expected the client listing", path)
	}
	if !strings.Contains(body, "Cliente cadastrado.") || !strings.Contains(body, "Maria") {
		t.Error("listing page missing flash or the new client")
	}

	var count int64
	db.Model(&models.Client{}).Count(&count)
	if count != 1 {
		t.Errorf("client count = %d, expected 1", count)
	}

	// Flash é one-shot: some na visita seguinte.
	again := getPage(t, client, srv.URL+"/clients")
	if strings.Contains(again, "Cliente cadastrado.") {
		t.Error("flash message survived a second request")
	}
}

func TestClientSearchOverHTTP(t *testing.T) {
	srv, db, client := newTestServer(t)

	seedClient(t, db, "Maria Silva")
	seedClient(t, db, "João Souza")

	body := getPage(t, client, srv.URL+"/clients?q=silva")
	if !strings.Contains(body, "Maria Silva") || strings.Contains(body, "João Souza") {
		t.Error("search result should contain only Maria Silva")
	}

	body = getPage(t, client, srv.URL+"/clients?q=nada-disso")
	if strings.Contains(body, "Maria Silva") || strings.Contains(body, "João Souza") {
		t.Error("search with no match should list nobody")
	}
}

func TestAddNoteOverHTTP(t *testing.T) {
	srv, db, client := newTestServer(t)

	id := seedClient(t, db, "Maria")
	detail := srv.URL + "/clients/" + strconv.Itoa(int(id))

	body, path := postForm(t, client, detail, url.Values{
		"content": {"primeira visita"},
	})
	if path != "/clients/"+strconv.Itoa(int(id)) {
		t.Errorf("redirected to %s, expected back to the client page", path)
	}
	if !strings.Contains(body, "Observação registrada.") || !strings.Contains(body, "primeira visita") {
		t.Error("client page missing flash or the new note")
	}

	// Observação vazia: flash de validação, nada gravado.
	body, _ = postForm(t, client, detail, url.Values{"content": {"  "}})
	if !strings.Contains(body, "Escreva a observação.") {
		t.Error("flash message not shown after rejected note")
	}

	var count int64
	db.Model(&models.Note{}).Count(&count)
	if count != 1 {
		t.Errorf("note count = %d, expected 1", count)
	}
}

func TestCreateAppointmentDurationFallback(t *testing.T) {
	srv, db, client := newTestServer(t)

	id := seedClient(t, db, "Maria")

	// Duração ilegível degrada para 60 sem reclamar.
	body, path := postForm(t, client, srv.URL+"/appointments/new", url.Values{
		"client_id":    {strconv.Itoa(int(id))},
		"starts_at":    {"2025-01-10T10:00"},
		"duration_min": {"abc"},
		"status":       {"Scheduled"},
	})

	if path != "/appointments" {
		t.Errorf("redirected to %s, expected the appointment listing", path)
	}
	if !strings.Contains(body, "Consulta agendada.") {
		t.Error("listing page missing the success flash")
	}

	var ap models.Appointment
	if err := db.First(&ap).Error; err != nil {
		t.Fatalf("appointment not persisted: %v", err)
	}
	if ap.DurationMin != 60 {
		t.Errorf("DurationMin = %d, expected the silent default 60", ap.DurationMin)
	}
}

func TestCreateAppointmentMissingClientOverHTTP(t *testing.T) {
	srv, db, client := newTestServer(t)

	body, path := postForm(t, client, srv.URL+"/appointments/new", url.Values{
		"client_id": {"4242"},
		"starts_at": {"2025-01-10T10:00"},
	})

	if path != "/appointments/new" {
		t.Errorf("redirected to %s, expected back to the form", path)
	}
	if !strings.Contains(body, "Cliente não encontrado.") {
		t.Error("flash message not shown for missing client")
	}

	var count int64
	db.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Errorf("appointment count = %d, expected 0", count)
	}
}

func TestAppointmentRangeFilterOverHTTP(t *testing.T) {
	srv, db, client := newTestServer(t)

	mariaID := seedClient(t, db, "Maria")
	joaoID := seedClient(t, db, "João")

	repo := infraRepo.NewAppointmentGormRepository(db)
	ctx := context.Background()

	late := time.Date(2025, 1, 10, 23, 30, 0, 0, time.Local)
	next := time.Date(2025, 1, 11, 0, 1, 0, 0, time.Local)
	if _, err := repo.Create(ctx, mariaID, late, 60, "", ""); err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	if _, err := repo.Create(ctx, joaoID, next, 60, "", ""); err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	body := getPage(t, client, srv.URL+"/appointments?from=2025-01-09&to=2025-01-10")
	if !strings.Contains(body, "Maria") {
		t.Error("23:30 of the to-day should be inside the inclusive range")
	}
	if strings.Contains(body, "João") {
		t.Error("00:01 of the next day should be outside the range")
	}
}

func TestEditAppointmentOverHTTP(t *testing.T) {
	srv, db, client := newTestServer(t)

	id := seedClient(t, db, "Maria")
	repo := infraRepo.NewAppointmentGormRepository(db)

	apID, err := repo.Create(
		context.Background(),
		id,
		time.Date(2025, 1, 10, 10, 0, 0, 0, time.Local),
		60,
		"Scheduled",
		"",
	)
	if err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	editURL := srv.URL + "/appointments/" + strconv.Itoa(int(apID)) + "/edit"

	form := getPage(t, client, editURL)
	if !strings.Contains(form, "2025-01-10T10:00") {
		t.Error("edit form missing the current start time")
	}

	body, path := postForm(t, client, editURL, url.Values{
		"starts_at":    {"2025-01-12T15:00"},
		"duration_min": {"30"},
		"status":       {"Canceled"},
		"notes":        {"remarcada"},
	})
	if path != "/appointments" {
		t.Errorf("redirected to %s, expected the appointment listing", path)
	}
	if !strings.Contains(body, "Consulta atualizada.") {
		t.Error("listing page missing the success flash")
	}

	var ap models.Appointment
	if err := db.First(&ap, apID).Error; err != nil {
		t.Fatalf("appointment vanished: %v", err)
	}
	if ap.Status != "Canceled" || ap.DurationMin != 30 || ap.Notes != "remarcada" {
		t.Errorf("edit not applied: %+v", ap)
	}

	// Editar id inexistente: flash + listagem, nunca erro cru.
	body, path = postForm(t, client, srv.URL+"/appointments/9999/edit", url.Values{
		"starts_at": {"2025-01-12T15:00"},
		"status":    {"Scheduled"},
	})
	if path != "/appointments" || !strings.Contains(body, "Consulta não encontrada.") {
		t.Error("missing appointment should flash and land on the listing")
	}
}

func TestOverviewShowsUpcomingWeek(t *testing.T) {
	srv, db, client := newTestServer(t)

	mariaID := seedClient(t, db, "Maria")
	fernandaID := seedClient(t, db, "Fernanda")
	repo := infraRepo.NewAppointmentGormRepository(db)
	ctx := context.Background()

	now := time.Now().Truncate(time.Minute)
	if _, err := repo.Create(ctx, mariaID, now.Add(24*time.Hour), 60, "", ""); err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	if _, err := repo.Create(ctx, fernandaID, now.Add(30*24*time.Hour), 60, "", ""); err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}

	body := getPage(t, client, srv.URL+"/")
	if !strings.Contains(body, "Próximos 7 dias") || !strings.Contains(body, "Maria") {
		t.Error("overview missing the 7-day agenda")
	}
	if strings.Contains(body, "Fernanda") {
		t.Error("overview should not list appointments beyond the window")
	}
}
