package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"
)

// ReserveRequest is the reservation payload
type ReserveRequest struct {
	DeskNumber int      `json:"deskNumber"`
	Location   string   `json:"location"`
	Dates      []string `json:"dates"`
	StartTime  string   `json:"startTime"`
	EndTime    string   `json:"endTime"`
}

// Outcome is one per-date result in the API response
type Outcome struct {
	Date      string `json:"date"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
	BookingID uint64 `json:"bookingId,omitempty"`
}

// ReserveResponse is the API response
type ReserveResponse struct {
	Outcomes []Outcome `json:"outcomes"`
	Booked   int       `json:"booked"`
	Rejected int       `json:"rejected"`
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	BookedDates        int
	RejectedDates      int
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	Lock               sync.Mutex
}

// Slot defines one contended reservation scenario
type Slot struct {
	DeskNumber int
	StartTime  string
	EndTime    string
}

func main() {
	// Define command line flags
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	token := flag.String("token", "", "Bearer token of an existing account")
	location := flag.String("location", "HQ", "Location to book desks in")
	desks := flag.Int("desks", 3, "Number of desks to contend for")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	if *token == "" {
		fmt.Println("A bearer token is required, register and login first (-token)")
		return
	}

	// A small desk pool with fixed hour slots maximizes overlap conflicts,
	// which is exactly what this test is probing
	slots := make([]Slot, 0, *desks*5)
	for desk := 1; desk <= *desks; desk++ {
		for hour := 9; hour <= 13; hour++ {
			slots = append(slots, Slot{
				DeskNumber: desk,
				StartTime:  fmt.Sprintf("%02d:00", hour),
				EndTime:    fmt.Sprintf("%02d:00", hour+1),
			})
		}
	}

	dates := upcomingDates(5)

	fmt.Printf("Load testing reservations at %s\n", *baseURL)
	fmt.Printf("Location: %s, desks: %d, slots: %d, dates: %v\n", *location, *desks, len(slots), dates)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour, // Start with a high value that will be replaced
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
	}

	client := &http.Client{Timeout: 10 * time.Second}
	requests := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		requests <- i
	}
	close(requests)

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range requests {
				slot := slots[rand.Intn(len(slots))]
				payload := ReserveRequest{
					DeskNumber: slot.DeskNumber,
					Location:   *location,
					Dates:      []string{dates[rand.Intn(len(dates))]},
					StartTime:  slot.StartTime,
					EndTime:    slot.EndTime,
				}
				runRequest(client, *baseURL, *token, payload, stats)
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	printStats(stats, elapsed)
}

// runRequest fires one reservation call and records its result
func runRequest(client *http.Client, baseURL, token string, payload ReserveRequest, stats *TestStats) {
	body, err := json.Marshal(payload)
	if err != nil {
		recordError(stats, err.Error())
		return
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		recordError(stats, err.Error())
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	requestStart := time.Now()
	resp, err := client.Do(req)
	responseTime := time.Since(requestStart)
	if err != nil {
		recordError(stats, err.Error())
		return
	}
	defer resp.Body.Close()

	var result ReserveResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	stats.ResponseTimes = append(stats.ResponseTimes, responseTime)
	stats.TotalResponseTime += responseTime
	if responseTime < stats.MinResponseTime {
		stats.MinResponseTime = responseTime
	}
	if responseTime > stats.MaxResponseTime {
		stats.MaxResponseTime = responseTime
	}

	if resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusUnprocessableEntity {
		stats.SuccessfulRequests++
		if decodeErr == nil {
			stats.BookedDates += result.Booked
			stats.RejectedDates += result.Rejected
		}
	} else {
		stats.FailedRequests++
		stats.ErrorCounts[fmt.Sprintf("HTTP %d", resp.StatusCode)]++
	}
}

func recordError(stats *TestStats, msg string) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()
	stats.FailedRequests++
	stats.ErrorCounts[msg]++
}

// upcomingDates returns n calendar dates starting tomorrow
func upcomingDates(n int) []string {
	dates := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		dates = append(dates, time.Now().AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}

func printStats(stats *TestStats, elapsed time.Duration) {
	fmt.Println("\n===== Load Test Results =====")
	fmt.Printf("Total time: %v\n", elapsed)
	fmt.Printf("Requests: %d total, %d completed, %d failed\n",
		stats.TotalRequests, stats.SuccessfulRequests, stats.FailedRequests)
	fmt.Printf("Dates: %d booked, %d rejected\n", stats.BookedDates, stats.RejectedDates)

	if len(stats.ResponseTimes) > 0 {
		avg := stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
		sort.Slice(stats.ResponseTimes, func(i, j int) bool {
			return stats.ResponseTimes[i] < stats.ResponseTimes[j]
		})
		p95 := stats.ResponseTimes[len(stats.ResponseTimes)*95/100]
		fmt.Printf("Response times: min=%v avg=%v p95=%v max=%v\n",
			stats.MinResponseTime, avg, p95, stats.MaxResponseTime)
		fmt.Printf("Throughput: %.1f req/s\n", float64(len(stats.ResponseTimes))/elapsed.Seconds())
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("Errors:")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("  %dx %s\n", count, msg)
		}
	}
}
