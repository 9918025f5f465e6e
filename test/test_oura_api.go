package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

func main() {
	accessToken := os.Getenv("OURA_ACCESS_TOKEN")
	if accessToken == "" {
		fmt.Println("❌ OURA_ACCESS_TOKEN not found in environment")
		return
	}

	prefix := accessToken
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	fmt.Printf("🔗 Testing Oura API endpoints with token: %s...\n", prefix)
	fmt.Println()

	// Test 1: Personal Info
	fmt.Println("1️⃣ Testing Personal Info...")
	testEndpoint("https://api.ouraring.com/v2/usercollection/personal_info", accessToken, nil)

	// Date window for the collection endpoints (last 7 days)
	params := url.Values{}
	end := time.Now()
	start := end.AddDate(0, 0, -7)
	params.Set("start_date", start.Format("2006-01-02"))
	params.Set("end_date", end.Format("2006-01-02"))

	// Test 2: Recent Sleep (last 7 days)
	fmt.Println("\n2️⃣ Testing Sleep Data...")
	testEndpoint("https://api.ouraring.com/v2/usercollection/sleep", accessToken, params)

	// Test 3: Recent Readiness (last 7 days)
	fmt.Println("\n3️⃣ Testing Readiness Data...")
	testEndpoint("https://api.ouraring.com/v2/usercollection/daily_readiness", accessToken, params)

	// Test 4: Recent Activity (last 7 days)
	fmt.Println("\n4️⃣ Testing Activity Data...")
	testEndpoint("https://api.ouraring.com/v2/usercollection/daily_activity", accessToken, params)

	// Test 5: Recent Workouts (last 7 days)
	fmt.Println("\n5️⃣ Testing Workout Data...")
	testEndpoint("https://api.ouraring.com/v2/usercollection/workout", accessToken, params)
}

func testEndpoint(baseURL string, accessToken string, params url.Values) {
	// Build URL with parameters
	requestURL := baseURL
	if params != nil && len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	fmt.Printf("   📡 GET %s\n", requestURL)

	// Create request
	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		fmt.Printf("   ❌ Failed to create request: %v\n", err)
		return
	}

	// Add auth header
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	// Make request
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("   ❌ Request failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	// Read response
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("   ❌ Failed to read response: %v\n", err)
		return
	}

	// Check status
	if resp.StatusCode != 200 {
		fmt.Printf("   ❌ HTTP %d: %s\n", resp.StatusCode, string(body))
		return
	}

	// Parse and display JSON
	var result interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("   ❌ Failed to parse JSON: %v\n", err)
		fmt.Printf("   Raw response: %s\n", string(body))
		return
	}

	// Pretty print JSON
	prettyJSON, err := json.MarshalIndent(result, "   ", "  ")
	if err != nil {
		fmt.Printf("   ❌ Failed to format JSON: %v\n", err)
		return
	}

	fmt.Printf("   ✅ Success (%d bytes):\n", len(body))
	fmt.Printf("%s\n", string(prettyJSON))
}
