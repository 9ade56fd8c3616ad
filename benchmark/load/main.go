package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"google.golang.org/grpc"
	monitorGrpc "liyu1981.xyz/vitals-monitor-service/pkg/grpc"
	"liyu1981.xyz/vitals-monitor-service/pkg/monitor"
)

var maxClients int = 500
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:10801"

var grpcClient *monitorGrpc.MonitorServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

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

	conn, err := grpc.Dial(grpcHostPort, grpc.WithInsecure())
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = monitorGrpc.NewMonitorServiceClient(conn)

	if _, err := grpcClient.Start(context.Background()); err != nil {
		log.Fatal("Failed to start monitor over gRPC:", err)
	}

	fmt.Printf("gRPC server verified and monitor started\n")

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range maxClients {
		wg.Add(1)
		go func() {
			doAction(i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v clients: used time=%v seconds, throughput=%v action/second\n",
		maxClients, usedTime.Seconds(), float64(maxClients*4)/usedTime.Seconds(),
	)

	r, err := grpcClient.GetAlerts(context.Background())
	if err != nil {
		log.Fatal("Failed to read session metrics:", err)
	}
	fmt.Printf("session metrics: %v\n", r.Fields["metrics"])
}

func randomPatient() string {
	rndMu.Lock()
	defer rndMu.Unlock()
	return monitor.DefaultPatients[rnd.Intn(len(monitor.DefaultPatients))].ID
}

func flipCoin() bool {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	rndMu.Lock()
	val := min + rnd.Float64()*(max-min)
	rndMu.Unlock()
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func pause() {
	rndMu.Lock()
	d := time.Duration(100+rnd.Int31n(1000)) * time.Millisecond
	rndMu.Unlock()
	time.Sleep(d)
}

func doAction(client int) {
	actions := []func(){
		injectEventAction,
		getAlertsAction,
		getVitalsAction,
		patchRuleAction,
	}
	actionNames := []string{
		"InjectEvent",
		"GetAlerts",
		"GetVitals",
		"PatchRule",
	}
	rndMu.Lock()
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	rndMu.Unlock()
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for client %v", actionNames[index], client)
		pause()
	}
}

func injectEventAction() {
	patientID := randomPatient()

	if flipCoin() {
		resp, err := http.Post(fmt.Sprintf("http://%s/patients/%s/event", httpHostPort, patientID), "application/json", nil)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		// 429 is expected under load
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusTooManyRequests {
			fmt.Printf("\nresponse status code = %v\n", resp.StatusCode)
		}
	} else {
		resp, err := grpcClient.InjectEvent(context.Background(), patientID)
		if err != nil {
			// ResourceExhausted is expected under load
			return
		}
		if !resp.Fields["success"].GetBoolValue() {
			fmt.Printf("\nresponse success = false: %v\n", resp)
		}
	}
}

func getAlertsAction() {
	if flipCoin() {
		resp, err := http.Get(fmt.Sprintf("http://%s/alerts", httpHostPort))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	} else {
		resp, err := grpcClient.GetAlerts(context.Background())
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if !resp.Fields["success"].GetBoolValue() {
			fmt.Printf("\nresponse success = false: %v\n", resp)
		}
	}
}

func getVitalsAction() {
	patientID := randomPatient()

	if flipCoin() {
		resp, err := http.Get(fmt.Sprintf("http://%s/patients/%s/vitals", httpHostPort, patientID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	} else {
		resp, err := grpcClient.GetPatientVitals(context.Background(), patientID)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		if !resp.Fields["success"].GetBoolValue() {
			fmt.Printf("\nresponse success = false: %v\n", resp)
		}
	}
}

func patchRuleAction() {
	payload := map[string]float64{"value": rndFloat64(110.0, 130.0, 0)}
	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPatch, fmt.Sprintf("http://%s/rules/hrHigh", httpHostPort), bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if flipCoin() {
		if _, err := grpcClient.UndoRules(context.Background()); err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
	}
}
