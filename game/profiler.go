package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		profilesDir:     dir,
		captureDuration: 3 * time.Second,
	}
}

// CaptureProfile starts a background capture unless one is running or the cooldown has not passed
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime).Round(time.Second))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(p.profilesDir, 0755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("frame-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	// Capture in a goroutine to avoid blocking the game loop
	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				fmt.Printf("Error capturing CPU profile: %v\n", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				fmt.Printf("Error capturing trace: %v\n", err)
			}
		}()
		wg.Wait()

		p.analyzeProfile(baseName)
	}()

	return nil
}

// captureCPUProfile records a CPU profile for the capture duration
func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	fmt.Printf("CPU profile saved to: %s\n", profilePath)
	return nil
}

// captureTrace records an execution trace for the capture duration
func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	fmt.Printf("Trace saved to: %s\n", tracePath)
	return nil
}

// analyzeProfile prints where the capture went and the memory stats at the end of it
func (p *Profiler) analyzeProfile(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		fmt.Printf("Warning: Could not analyze profile: %v\n", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	fmt.Printf("\n=== Performance Analysis: %s ===\n", baseName)
	fmt.Printf("Profile file: %s (%.2f KB)\n", profilePath, float64(info.Size())/1024)
	fmt.Printf("View with: go tool pprof -http=:8080 %s\n", profilePath)
	fmt.Printf("Heap: %d KB in %d objects, NumGC=%d\n", m.HeapAlloc/1024, m.HeapObjects, m.NumGC)
	fmt.Printf("=== End Analysis ===\n\n")
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
