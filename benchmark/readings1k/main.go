package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	trackerGrpc "liyu1981.xyz/glucose-tracker/pkg/grpc"
	"liyu1981.xyz/glucose-tracker/pkg/reminder"
)

var maxReadings int = 1000
var maxMedications int = 20
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient *trackerGrpc.ReminderEventsClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

var readingTypes = []string{"FASTING", "BEFORE_MEAL", "AFTER_MEAL", "RANDOM"}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = trackerGrpc.NewReminderEventsClient(conn)

	fmt.Printf("gRPC client connected\n")

	postJSON("/profiles", map[string]any{
		"username":           "bench-" + uuid.NewString()[:8],
		"target_glucose_min": 70,
		"target_glucose_max": 180,
	}, nil)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxReadings {
		wg.Add(1)
		go func() {
			defer wg.Done()
			insertReading(i)
			fmt.Printf("\rinserted reading %v", i)
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rinserted %v readings: used time=%v seconds, throughput=%v action/second\n",
		maxReadings, usedTime.Seconds(), float64(maxReadings)/usedTime.Seconds(),
	)

	medicationIDs := make([]uint, maxMedications)
	for i := range maxMedications {
		var med struct {
			ID uint `json:"id"`
		}
		postJSON("/medications", map[string]any{
			"name":   fmt.Sprintf("bench-med-%d", i),
			"dosage": "10mg",
			"times":  []string{fmt.Sprintf("%02d:%02d", randInt(24), randInt(60))},
		}, &med)
		medicationIDs[i] = med.ID
	}

	fmt.Printf("created %v medications\n", maxMedications)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxReadings {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doAction(medicationIDs[i%maxMedications])
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions: used time=%v seconds, throughput=%v action/second\n",
		usedTime.Seconds(), float64(maxReadings*3)/usedTime.Seconds(),
	)
}

func randInt(n int) int {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Intn(n)
}

func flipCoin() bool {
	return randInt(100000)%2 == 0
}

func postJSON(path string, payload any, out any) {
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s%s", httpHostPort, path), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("\n%s: response status code %v\n", path, resp.StatusCode)
		return
	}
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
}

func insertReading(i int) {
	postJSON("/readings", map[string]any{
		"glucose_level": 60 + randInt(200),
		"timestamp":     time.Now().Add(-time.Duration(randInt(30*24)) * time.Hour).Format(time.RFC3339),
		"reading_type":  readingTypes[i%len(readingTypes)],
	}, nil)
}

func doAction(medicationID uint) {
	actions := []func(){
		genTakenAction(medicationID),
		genAnalysisAction(),
		genRecentReadingsAction(),
	}
	for _, action := range actions {
		action()
		time.Sleep(time.Duration(100+randInt(1000)) * time.Millisecond)
	}
	fmt.Printf("\rexecuted actions for medication %v", medicationID)
}

// genTakenAction marks a dose either through REST or as a notification
// action over gRPC.
func genTakenAction(medicationID uint) func() {
	return func() {
		if flipCoin() {
			postJSON(fmt.Sprintf("/medications/%d/taken", medicationID), map[string]any{"notes": "benchmark"}, nil)
			return
		}

		result, err := grpcClient.DeliverEvent(context.Background(), reminder.ActionMarkAsTaken, map[string]any{
			reminder.ExtraMedicationID: medicationID,
		})
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if !result.Success {
			fmt.Printf("\nresponse success = false: %v\n", result.Message)
		}
	}
}

func genAnalysisAction() func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/analysis?days=30", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	}
}

func genRecentReadingsAction() func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/readings/recent?limit=50", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
		}
	}
}
