package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"heart-risk/internal/config"
	"heart-risk/internal/db"
	"heart-risk/internal/domain"
	"heart-risk/internal/predictor"
	"heart-risk/internal/repository"
	"heart-risk/internal/service"
)

// Corre el mismo flujo del dashboard desde la terminal: carga el perfil, pide datos si faltan
// y muestra el resultado del analisis.
func main() {
	email := flag.String("email", "cli_test@example.com", "usuario a analizar")
	flag.Parse()

	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	healthRepo := repository.NewPgHealthRepository(pool)
	predictorClient := predictor.NewHTTPClient(
		cfg.PredictorBaseURL,
		cfg.PredictorAPIKey,
		time.Duration(cfg.PredictorTimeoutSeconds)*time.Second,
		logger,
	)
	loader := service.NewProfileLoader(healthRepo, logger, nil)
	presenter := service.NewRiskPresenter(predictorClient, healthRepo, logger, nil)

	user, err := ensureUser(ctx, userRepo, *email)
	if err != nil {
		log.Fatal(err)
	}

	profile, err := loader.Load(ctx, user.ID)
	switch {
	case errors.Is(err, service.ErrStorageFailure):
		log.Fatalf("Error fetching user details: %v", err)
	case errors.Is(err, service.ErrProfileNotFound):
		fmt.Println("You haven't filled your health data.")
		if _, err := healthRepo.Create(ctx, readHealthRecord(reader, user.ID)); err != nil {
			log.Fatalf("guardar datos: %v", err)
		}
		if profile, err = loader.Load(ctx, user.ID); err != nil {
			log.Fatalf("cargar perfil: %v", err)
		}
	case err != nil:
		log.Fatal(err)
	}

	printProfile(profile)

	fmt.Println("\nAnalizando. Por favor, espere...")
	bundle, err := presenter.Assess(ctx, user.ID, profile)
	if err != nil {
		log.Fatalf("analisis: %v", err)
	}
	printBundle(bundle)
}

func ensureUser(ctx context.Context, repo repository.UserRepository, email string) (domain.User, error) {
	u, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	u = domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func readHealthRecord(reader *bufio.Reader, userID string) domain.HealthRecord {
	return domain.HealthRecord{
		UserID:         userID,
		Age:            readIntDefault(reader, "Age [50]: ", 50),
		Sex:            readChoice(reader, "Sex", []string{domain.SexMale, domain.SexFemale}),
		ChestPainType:  readChoice(reader, "Chest pain type", domain.ChestPainTypes.Labels()),
		RestingBP:      readIntDefault(reader, "Resting blood pressure [120]: ", 120),
		Cholesterol:    readIntDefault(reader, "Cholesterol [200]: ", 200),
		FastingBS:      readIntDefault(reader, "Fasting blood sugar mg/dL [100]: ", 100),
		RestingECG:     readChoice(reader, "Resting ECG", domain.RestingECGs.Labels()),
		MaxHR:          readIntDefault(reader, "Max heart rate [150]: ", 150),
		ExerciseAngina: readChoice(reader, "Exercise angina", []string{"N", "Y"}),
		Oldpeak:        readFloatDefault(reader, "Oldpeak [0.0]: ", 0),
		STSlope:        readChoice(reader, "ST slope", domain.STSlopes.Labels()),
		CreatedAt:      time.Now().UTC(),
	}
}

func readChoice(reader *bufio.Reader, prompt string, options []string) string {
	sort.Strings(options)
	for i, o := range options {
		fmt.Printf("  %d) %s\n", i+1, o)
	}
	idx := readIntDefault(reader, prompt+" [1]: ", 1)
	if idx < 1 || idx > len(options) {
		idx = 1
	}
	return options[idx-1]
}

func readIntDefault(reader *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	if v, err := strconv.Atoi(line); err == nil {
		return v
	}
	return def
}

func readFloatDefault(reader *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if v, err := strconv.ParseFloat(line, 64); err == nil {
		return v
	}
	return def
}

func printProfile(p domain.HealthProfile) {
	label := func(t domain.CodeTable, code string) string {
		if l, ok := t.Label(code); ok {
			return fmt.Sprintf("%s (%s)", code, l)
		}
		return code
	}
	fmt.Println("===== User Profile Summary =====")
	fmt.Printf("Age: %d  Sex: %s\n", p.Age, p.Sex)
	fmt.Printf("Chest pain: %s\n", label(domain.ChestPainTypes, p.ChestPainType))
	fmt.Printf("Resting BP: %d  Cholesterol: %d\n", p.RestingBP, p.Cholesterol)
	fmt.Printf("Fasting blood sugar: %d mg/dL (FastingBS=%d)\n", p.FastingBloodSugar, p.FastingBS)
	fmt.Printf("Resting ECG: %s\n", label(domain.RestingECGs, p.RestingECG))
	fmt.Printf("Max HR: %d  Exercise angina: %s  Oldpeak: %.1f\n", p.MaxHR, p.ExerciseAngina, p.Oldpeak)
	fmt.Printf("ST slope: %s\n", label(domain.STSlopes, p.STSlope))
}

func printBundle(b domain.PresentationBundle) {
	fmt.Println("\n===== Heart Disease Prediction Summary =====")
	fmt.Println(b.Interpretation.Message)
	fmt.Printf("Your Risk Level: %s. %s\n", b.RiskLevel.Level, b.RiskLevel.Explanation)

	fmt.Println(b.Concerns.Message)
	for _, f := range b.Concerns.Items {
		fmt.Printf("  - %s\n", f)
	}

	fmt.Printf("\nGauge: %.0f%% (%s)\n", b.Gauge.Value, b.Gauge.BarColor)
	for _, row := range b.Comparison {
		fmt.Printf("  %-12s user=%-8.1f normal=%.1f\n", row.Metric, row.User, row.Normal)
	}

	if len(b.Advisories) > 0 {
		fmt.Println("\nPersonalized Health Tips:")
		for _, a := range b.Advisories {
			fmt.Printf("  - %s\n", a.Text)
		}
	}
	fmt.Println("\n" + b.ClosingNote)

	if b.Persisted {
		fmt.Println("Risk percentage saved successfully in your profile!")
	} else {
		fmt.Println(b.PersistWarning)
	}
}
