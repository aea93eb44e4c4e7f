package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// seedBook is the create payload accepted by POST /books.
type seedBook struct {
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage"`
	Reading   bool   `json:"reading"`
}

var (
	adjectives = []string{"Silent", "Hidden", "Last", "Broken", "Golden", "Distant", "Forgotten", "Burning"}
	nouns      = []string{"River", "Kingdom", "Garden", "Archive", "Harbor", "Mountain", "Letter", "Orchard"}
	authors    = []string{"Andrea Hirata", "Pramoedya Ananta Toer", "Dee Lestari", "Tere Liye", "Ayu Utami", "Eka Kurniawan"}
	publishers = []string{"Gramedia", "Bentang Pustaka", "Mizan", "Republika", "Hasta Mitra", "Dicoding Indonesia"}
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	var (
		apiURL = flag.String("api", defaultAPIURL(), "Base URL of the book API")
		count  = flag.Int("count", 25, "Number of books to create")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := &http.Client{Timeout: 5 * time.Second}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for i := 0; i < *count; i++ {
		id, err := postBook(ctx, client, *apiURL, randomBook(rng))
		if err != nil {
			logger.Error().Err(err).Int("index", i).Msg("seed book failed")
			continue
		}
		created++
		logger.Debug().Str("book_id", id).Msg("seeded book")
	}

	logger.Info().Int("created", created).Int("requested", *count).Str("api", *apiURL).Msg("seeding finished")
	if created != *count {
		os.Exit(1)
	}
}

func defaultAPIURL() string {
	if v := os.Getenv("SEED_API_URL"); v != "" {
		return v
	}
	addr := os.Getenv("APP_ADDR")
	if addr == "" {
		addr = "localhost:9000"
	}
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

func randomBook(rng *rand.Rand) seedBook {
	pageCount := 80 + rng.Intn(600)
	readPage := rng.Intn(pageCount + 1)
	// Roughly one in four seeded books is finished.
	if rng.Intn(4) == 0 {
		readPage = pageCount
	}
	title := fmt.Sprintf("The %s %s", adjectives[rng.Intn(len(adjectives))], nouns[rng.Intn(len(nouns))])
	return seedBook{
		Name:      title,
		Year:      1950 + rng.Intn(75),
		Author:    authors[rng.Intn(len(authors))],
		Summary:   "A seeded book about " + strings.ToLower(title[4:]) + ".",
		Publisher: publishers[rng.Intn(len(publishers))],
		PageCount: pageCount,
		ReadPage:  readPage,
		Reading:   readPage > 0 && readPage < pageCount,
	}
}

func postBook(ctx context.Context, client *http.Client, apiURL string, b seedBook) (string, error) {
	body, err := json.Marshal(b)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(apiURL, "/")+"/books", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var env struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			BookID string `json:"bookId"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, env.Message)
	}
	return env.Data.BookID, nil
}
