package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"bloghub/internal/notify"
	"bloghub/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type tokenData struct {
	Token string `json:"token"`
}

type authResponse struct {
	Token string `json:"token"`
}

type postListResponse struct {
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	Items  []models.PostDB `json:"items"`
}

func main() {
	global := flag.NewFlagSet("bloghub", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	tokenPath := global.String("token", defaultTokenPath(), "token file path")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	client := &http.Client{Timeout: 15 * time.Second}

	switch cmd {
	case "auth":
		handleAuth(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "posts":
		handlePosts(ctx, client, *baseURL, sub, args[2:])
	case "series":
		handleSeries(ctx, client, *baseURL, sub, args[2:])
	case "reading":
		handleReading(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "progress":
		handleProgress(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "sync":
		handleSync(sub, args[2:])
	case "watch":
		handleWatch(*baseURL, sub, args[2:])
	case "notify":
		handleNotify(sub, args[2:])
	case "comments":
		handleComments(*baseURL, sub, args[2:])
	case "export":
		handleExport(ctx, client, *baseURL, sub, args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleAuth(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	switch sub {
	case "login":
		fs := flag.NewFlagSet("auth login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *email == "" || *password == "" {
			log.Fatal("email and password are required")
		}

		payload := map[string]string{"email": *email, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/login", "", payload, &resp); err != nil {
			log.Fatalf("login failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("✅ logged in")
	case "register":
		fs := flag.NewFlagSet("auth register", flag.ExitOnError)
		username := fs.String("username", "", "username")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *username == "" || *email == "" || *password == "" {
			log.Fatal("username, email, and password are required")
		}

		payload := map[string]string{"username": *username, "email": *email, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/register", "", payload, &resp); err != nil {
			log.Fatalf("register failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("✅ registered and logged in")
	case "logout":
		if err := clearToken(tokenPath); err != nil {
			log.Fatalf("logout failed: %v", err)
		}
		fmt.Println("✅ logged out")
	default:
		log.Fatal("usage: bloghub auth <login|register|logout>")
	}
}

func handlePosts(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "search":
		fs := flag.NewFlagSet("posts search", flag.ExitOnError)
		query := fs.String("q", "", "search query")
		seriesID := fs.String("series", "", "series filter")
		tags := fs.String("tags", "", "comma-separated tags")
		limit := fs.Int("limit", 20, "page size")
		offset := fs.Int("offset", 0, "offset")
		_ = fs.Parse(args)

		u, err := url.Parse(baseURL + "/posts")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		qv := u.Query()
		if *query != "" {
			qv.Set("q", *query)
		}
		if *seriesID != "" {
			qv.Set("series", *seriesID)
		}
		if *tags != "" {
			qv.Set("tags", *tags)
		}
		qv.Set("limit", fmt.Sprintf("%d", *limit))
		qv.Set("offset", fmt.Sprintf("%d", *offset))
		u.RawQuery = qv.Encode()

		var resp postListResponse
		if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
			log.Fatalf("search failed: %v", err)
		}
		printJSON(resp)
	case "show":
		fs := flag.NewFlagSet("posts show", flag.ExitOnError)
		slug := fs.String("slug", "", "post slug")
		_ = fs.Parse(args)
		if *slug == "" {
			log.Fatal("post slug is required")
		}

		var resp models.PostDB
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/posts/"+url.PathEscape(*slug), "", nil, &resp); err != nil {
			log.Fatalf("show failed: %v", err)
		}
		printJSON(resp)
	case "nav":
		fs := flag.NewFlagSet("posts nav", flag.ExitOnError)
		slug := fs.String("slug", "", "post slug")
		_ = fs.Parse(args)
		if *slug == "" {
			log.Fatal("post slug is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/posts/"+url.PathEscape(*slug)+"/nav", "", nil, &resp); err != nil {
			log.Fatalf("nav failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: bloghub posts <search|show|nav>")
	}
}

func handleSeries(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/series", "", nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	case "show":
		fs := flag.NewFlagSet("series show", flag.ExitOnError)
		id := fs.String("id", "", "series id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("series id is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/series/"+url.PathEscape(*id), "", nil, &resp); err != nil {
			log.Fatalf("show failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: bloghub series <list|show>")
	}
}

func handleReading(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	token := mustToken(tokenPath)
	switch sub {
	case "add":
		fs := flag.NewFlagSet("reading add", flag.ExitOnError)
		seriesID := fs.String("series", "", "series id")
		part := fs.Int("part", 0, "current part")
		status := fs.String("status", "reading", "status")
		_ = fs.Parse(args)
		if *seriesID == "" {
			log.Fatal("series is required")
		}

		payload := map[string]any{
			"series_id":    *seriesID,
			"current_part": *part,
			"status":       *status,
		}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/users/reading", token, payload, &resp); err != nil {
			log.Fatalf("add failed: %v", err)
		}
		printJSON(resp)
	case "remove":
		fs := flag.NewFlagSet("reading remove", flag.ExitOnError)
		seriesID := fs.String("series", "", "series id")
		_ = fs.Parse(args)
		if *seriesID == "" {
			log.Fatal("series is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodDelete, baseURL+"/users/reading/"+url.PathEscape(*seriesID), token, nil, &resp); err != nil {
			log.Fatalf("remove failed: %v", err)
		}
		printJSON(resp)
	case "list":
		fs := flag.NewFlagSet("reading list", flag.ExitOnError)
		status := fs.String("status", "", "status filter")
		limit := fs.Int("limit", 20, "page size")
		offset := fs.Int("offset", 0, "offset")
		_ = fs.Parse(args)

		u, err := url.Parse(baseURL + "/users/reading")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		qv := u.Query()
		if *status != "" {
			qv.Set("status", *status)
		}
		qv.Set("limit", fmt.Sprintf("%d", *limit))
		qv.Set("offset", fmt.Sprintf("%d", *offset))
		u.RawQuery = qv.Encode()

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, u.String(), token, nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	case "continue":
		fs := flag.NewFlagSet("reading continue", flag.ExitOnError)
		seriesID := fs.String("series", "", "series id")
		_ = fs.Parse(args)
		if *seriesID == "" {
			log.Fatal("series is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/users/reading/"+url.PathEscape(*seriesID)+"/continue", token, nil, &resp); err != nil {
			log.Fatalf("continue failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: bloghub reading <add|remove|list|continue>")
	}
}

func handleProgress(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	token := mustToken(tokenPath)
	switch sub {
	case "add":
		fs := flag.NewFlagSet("progress add", flag.ExitOnError)
		seriesID := fs.String("series", "", "series id")
		part := fs.Int("part", 0, "part just finished")
		_ = fs.Parse(args)
		if *seriesID == "" {
			log.Fatal("series is required")
		}

		payload := map[string]any{
			"series_id": *seriesID,
			"part":      *part,
		}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/users/progress", token, payload, &resp); err != nil {
			log.Fatalf("add failed: %v", err)
		}
		printJSON(resp)
	case "history":
		fs := flag.NewFlagSet("progress history", flag.ExitOnError)
		seriesID := fs.String("series", "", "series id")
		limit := fs.Int("limit", 20, "page size")
		offset := fs.Int("offset", 0, "offset")
		_ = fs.Parse(args)
		if *seriesID == "" {
			log.Fatal("series is required")
		}

		u, err := url.Parse(baseURL + "/users/progress")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		qv := u.Query()
		qv.Set("series_id", *seriesID)
		qv.Set("limit", fmt.Sprintf("%d", *limit))
		qv.Set("offset", fmt.Sprintf("%d", *offset))
		u.RawQuery = qv.Encode()

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, u.String(), token, nil, &resp); err != nil {
			log.Fatalf("history failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: bloghub progress <add|history>")
	}
}

func handleSync(sub string, args []string) {
	switch sub {
	case "listen":
		fs := flag.NewFlagSet("sync listen", flag.ExitOnError)
		addr := fs.String("addr", "127.0.0.1:7070", "TCP live-reload server address")
		pretty := fs.Bool("pretty", true, "pretty print JSON events")
		_ = fs.Parse(args)
		for {
			if err := runSyncTCP(*addr, *pretty); err != nil {
				log.Printf("[sync] disconnected: %v", err)
			}
			time.Sleep(1 * time.Second)
		}
	default:
		log.Fatal("usage: bloghub sync listen")
	}
}

func handleWatch(baseURL, sub string, args []string) {
	switch sub {
	case "events":
		fs := flag.NewFlagSet("watch events", flag.ExitOnError)
		wsURL := fs.String("ws", "", "WebSocket URL (defaults to /ws on API host)")
		_ = fs.Parse(args)

		endpoint := *wsURL
		if endpoint == "" {
			var err error
			endpoint, err = websocketURL(baseURL, "/ws")
			if err != nil {
				log.Fatalf("ws url: %v", err)
			}
		}
		if err := runWebSocket(endpoint); err != nil {
			log.Fatalf("watch failed: %v", err)
		}
	default:
		log.Fatal("usage: bloghub watch events")
	}
}

func handleNotify(sub string, args []string) {
	switch sub {
	case "subscribe":
		fs := flag.NewFlagSet("notify subscribe", flag.ExitOnError)
		addr := fs.String("addr", "127.0.0.1:7071", "UDP notify server address")
		user := fs.String("user", "", "user id to register")
		_ = fs.Parse(args)
		if *user == "" {
			log.Fatal("user is required")
		}
		if err := runNotifyUDP(*addr, *user); err != nil {
			log.Fatalf("subscribe failed: %v", err)
		}
	default:
		log.Fatal("usage: bloghub notify subscribe")
	}
}

func handleComments(baseURL, sub string, args []string) {
	switch sub {
	case "join":
		fs := flag.NewFlagSet("comments join", flag.ExitOnError)
		post := fs.String("post", "", "post slug")
		name := fs.String("name", "guest", "display name")
		_ = fs.Parse(args)
		if *post == "" {
			log.Fatal("post is required")
		}

		endpoint, err := websocketURL(baseURL, "/comments/ws")
		if err != nil {
			log.Fatalf("ws url: %v", err)
		}
		endpoint += "?post=" + url.QueryEscape(*post) + "&user=" + url.QueryEscape(*name)
		if err := runComments(endpoint, *name); err != nil {
			log.Fatalf("comments join failed: %v", err)
		}
	default:
		log.Fatal("usage: bloghub comments join")
	}
}

func handleExport(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "json":
		fs := flag.NewFlagSet("export json", flag.ExitOnError)
		out := fs.String("out", "data/posts.json", "output JSON path")
		limit := fs.Int("limit", 200, "max posts to export")
		_ = fs.Parse(args)

		items, err := fetchPosts(ctx, client, baseURL, *limit)
		if err != nil {
			log.Fatalf("export json failed: %v", err)
		}
		if err := writeJSON(*out, items); err != nil {
			log.Fatalf("write json failed: %v", err)
		}
		log.Printf("✅ exported %d posts to %s", len(items), *out)
	case "csv":
		fs := flag.NewFlagSet("export csv", flag.ExitOnError)
		out := fs.String("out", "data/posts.csv", "output CSV path")
		limit := fs.Int("limit", 200, "max posts to export")
		_ = fs.Parse(args)

		items, err := fetchPosts(ctx, client, baseURL, *limit)
		if err != nil {
			log.Fatalf("export csv failed: %v", err)
		}
		if err := writeCSV(*out, items); err != nil {
			log.Fatalf("write csv failed: %v", err)
		}
		log.Printf("✅ exported %d posts to %s", len(items), *out)
	default:
		log.Fatal("usage: bloghub export <json|csv>")
	}
}

func runSyncTCP(addr string, pretty bool) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer conn.Close()

	log.Printf("[sync] connected to %s", addr)
	reader := bufio.NewScanner(conn)
	for reader.Scan() {
		line := reader.Bytes()
		if !pretty {
			fmt.Println(string(line))
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal(line, &obj); err != nil {
			fmt.Println(string(line))
			continue
		}
		b, _ := json.MarshalIndent(obj, "", "  ")
		fmt.Println(string(b))
	}
	if err := reader.Err(); err != nil {
		return err
	}
	return os.ErrClosed
}

func runWebSocket(wsURL string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[watch] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Println(string(msg))
	}
}

func runNotifyUDP(addr, user string) error {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	payload, err := json.Marshal(notify.RegisterMessage{
		Type:   notify.RegisterMessageType,
		UserID: user,
	})
	if err != nil {
		return err
	}
	if _, err := conn.Write(payload); err != nil {
		return err
	}
	log.Printf("[notify] registered as %s at %s", user, addr)

	buf := make([]byte, 2048)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			return err
		}
		fmt.Println(string(buf[:n]))
	}
}

func runComments(wsURL, name string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Printf("[comments] joined as %s", name)

	go func() {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			fmt.Println(string(msg))
		}
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		payload, _ := json.Marshal(map[string]string{"text": text, "user": name})
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func fetchPosts(ctx context.Context, client *http.Client, baseURL string, limit int) ([]models.PostDB, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be > 0")
	}

	var out []models.PostDB
	offset := 0
	for len(out) < limit {
		pageSize := 50
		if remaining := limit - len(out); remaining < pageSize {
			pageSize = remaining
		}
		u, err := url.Parse(baseURL + "/posts")
		if err != nil {
			return nil, err
		}
		qv := u.Query()
		qv.Set("limit", fmt.Sprintf("%d", pageSize))
		qv.Set("offset", fmt.Sprintf("%d", offset))
		u.RawQuery = qv.Encode()

		var resp postListResponse
		if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
			return nil, err
		}
		if len(resp.Items) == 0 {
			break
		}
		out = append(out, resp.Items...)
		offset += len(resp.Items)
		if offset >= resp.Total {
			break
		}
	}

	return out, nil
}

func writeJSON(path string, items []models.PostDB) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeCSV(path string, items []models.PostDB) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{
		"slug", "title", "author", "tags", "series_id", "part", "description", "date",
	}); err != nil {
		return err
	}
	for _, item := range items {
		date := ""
		if !item.Date.IsZero() {
			date = item.Date.UTC().Format(time.RFC3339)
		}
		if err := writer.Write([]string{
			item.Slug,
			item.Title,
			item.Author,
			strings.Join(item.Tags, ","),
			item.SeriesID,
			fmt.Sprintf("%d", item.Part),
			item.Description,
			date,
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint, token string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	return nil
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.bloghub-token.json"
	}
	return filepath.Join(home, ".bloghub", "token.json")
}

func saveToken(path, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokenData{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func readToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var td tokenData
	if err := json.Unmarshal(data, &td); err != nil {
		return "", err
	}
	return strings.TrimSpace(td.Token), nil
}

func mustToken(path string) string {
	token, err := readToken(path)
	if err != nil {
		log.Fatalf("token not found, please login: %v", err)
	}
	if token == "" {
		log.Fatal("token empty, please login")
	}
	return token
}

func clearToken(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return (&url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}).String(), nil
}

func printUsage() {
	fmt.Println("bloghub <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  auth login|register|logout")
	fmt.Println("  posts search|show|nav")
	fmt.Println("  series list|show")
	fmt.Println("  reading add|remove|list|continue")
	fmt.Println("  progress add|history")
	fmt.Println("  sync listen")
	fmt.Println("  watch events")
	fmt.Println("  notify subscribe")
	fmt.Println("  comments join")
	fmt.Println("  export json|csv")
}
