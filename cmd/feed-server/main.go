package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
)

func main() {
	// serves data/feed.json at GET /feed.json
	dataPath := "data/feed.json"

	http.HandleFunc("/feed.json", func(w http.ResponseWriter, r *http.Request) {
		b, err := os.ReadFile(dataPath)
		if err != nil {
			http.Error(w, "cannot read feed.json: "+err.Error(), http.StatusInternalServerError)
			return
		}
		// validate JSON so bad file doesn't silently break
		var tmp any
		if err := json.Unmarshal(b, &tmp); err != nil {
			http.Error(w, "feed.json invalid JSON: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	})

	log.Println("feed-server listening on http://localhost:9000")
	log.Fatal(http.ListenAndServe(":9000", nil))
}
