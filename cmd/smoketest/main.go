// Command smoketest scans a directory of corpus files and checks that
// normalization is well behaved on real text: every file is normalized
// with the default options for its language and the output is normalized
// again, which must leave it unchanged. It also reports sentence counts,
// flags files whose sentence/paragraph ratio is a clear outlier, and
// prints the structural rune distribution of everything it saw.
//
// The language of a file is taken from its name: the last dot-separated
// field before the .txt extension (news.hi.txt and hi.txt are both
// Hindi). Files with an unsupported language code are skipped.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/indic-nlp/indic-go/normalize"
	"github.com/indic-nlp/indic-go/script"
	"github.com/indic-nlp/indic-go/sentsplit"
)

const (
	chunkSize      = 4 << 20 // 4 MB per read chunk
	maxWorkers     = 4
	expectedArgs   = 2
	bytesToMBShift = 20
)

type runeClass int

const (
	classConsonant runeClass = iota
	classVowel
	classVowelSign
	classHalanta
	classDigit
	classOtherInBlock
	classASCII
	classOther
)

type fileRatio struct {
	path       string
	sentences  int
	paragraphs int
	ratio      float64
}

type Stats struct {
	mu               sync.Mutex
	filesScanned     int
	filesSkipped     int
	totalBytes       int64
	stableOK         int
	stableFail       int
	sentenceOutliers int
	runeClassCounts  map[runeClass]int
	fileRatios       []fileRatio
}

type fileState struct {
	path            string
	lang            string
	pipeline        *normalize.Pipeline
	profile         *script.Profile
	runeClassCounts map[runeClass]int
	totalBytes      int64
	stableFailed    bool
	stableLogged    bool
	sentences       int
	paragraphs      int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	dirPath := os.Args[1]
	stats := &Stats{
		runeClassCounts: make(map[runeClass]int),
	}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, stats)
		}(path)
	}

	wg.Wait()

	flagSentenceOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

// langFromName extracts the language code from a corpus file name:
// the last dot-separated field before the .txt extension.
func langFromName(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), ".txt")
	if idx := strings.LastIndexByte(base, '.'); idx >= 0 {
		base = base[idx+1:]
	}
	return base
}

func processFile(path string, stats *Stats) {
	lang := langFromName(path)
	if !normalize.IsSupported(lang) {
		fmt.Fprintf(os.Stderr, "SKIP  %s: unsupported language %q\n", path, lang)
		stats.mu.Lock()
		stats.filesSkipped++
		stats.mu.Unlock()
		return
	}

	pipeline, err := normalize.BuildPipeline(lang, normalize.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "SKIP  %s: %v\n", path, err)
		stats.mu.Lock()
		stats.filesSkipped++
		stats.mu.Unlock()
		return
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stat %s: %v\n", path, err)
		return
	}
	fileSize := info.Size()
	fmt.Fprintf(os.Stderr, "START %s (%d MB)\n", path, fileSize>>bytesToMBShift)
	fileStart := time.Now()

	state := &fileState{
		path:            path,
		lang:            lang,
		pipeline:        pipeline,
		runeClassCounts: make(map[runeClass]int),
	}
	if p, ok := script.ProfileFor(lang); ok {
		state.profile = p
	}

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			if err == nil {
				if idx := bytes.LastIndexByte(chunk, '\n'); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else {
					leftover = chunk
					continue
				}
			} else {
				leftover = nil
			}

			state.processChunk(chunk)
		}

		if err != nil {
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(leftover)
	}

	state.paragraphs++

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d MB processed)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.totalBytes>>bytesToMBShift)

	mergeFileState(state, stats)
}

func (fs *fileState) processChunk(chunk []byte) {
	text := string(chunk)
	fs.totalBytes += int64(len(chunk))

	normalized := fs.pipeline.Normalize(text)

	if !fs.stableFailed {
		again := fs.pipeline.Normalize(normalized)
		if again != normalized {
			fs.stableFailed = true
			if !fs.stableLogged {
				logStabilityFailure(fs.path, normalized, again)
				fs.stableLogged = true
			}
		}
	}

	for _, r := range normalized {
		fs.runeClassCounts[classify(fs.profile, r)]++
	}

	fs.sentences += len(sentsplit.Split(normalized, fs.lang))

	fs.paragraphs += strings.Count(text, "\n\n")
}

func classify(p *script.Profile, r rune) runeClass {
	if r < 0x80 {
		return classASCII
	}
	if p == nil || !p.InBlock(r) {
		return classOther
	}
	switch {
	case p.IsConsonant(r):
		return classConsonant
	case p.IsVowel(r):
		return classVowel
	case p.IsVowelSign(r):
		return classVowelSign
	case p.IsHalanta(r):
		return classHalanta
	case p.IsNumber(r):
		return classDigit
	default:
		return classOtherInBlock
	}
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes

	if fs.stableFailed {
		stats.stableFail++
	} else {
		stats.stableOK++
	}

	for class, count := range fs.runeClassCounts {
		stats.runeClassCounts[class] += count
	}

	ratio := float64(fs.sentences) / float64(fs.paragraphs)
	stats.fileRatios = append(stats.fileRatios, fileRatio{
		path:       fs.path,
		sentences:  fs.sentences,
		paragraphs: fs.paragraphs,
		ratio:      ratio,
	})
}

func logStabilityFailure(path, once, twice string) {
	pos, got, want := firstDivergence(once, twice)
	fmt.Fprintf(os.Stderr, "STABILITY_FAIL: %s: second pass diverges at byte %d (got 0x%02x, want 0x%02x)\n",
		path, pos, got, want)
}

// flagSentenceOutliers computes the median sentence/paragraph ratio across all
// files and flags any file whose ratio exceeds 3x the median.
func flagSentenceOutliers(stats *Stats) {
	if len(stats.fileRatios) == 0 {
		return
	}

	ratios := make([]float64, len(stats.fileRatios))
	for i, fr := range stats.fileRatios {
		ratios[i] = fr.ratio
	}
	med := computeMedian(ratios)

	for _, fr := range stats.fileRatios {
		if med > 0 && fr.ratio > 3*med {
			stats.sentenceOutliers++
			fmt.Fprintf(os.Stderr, "SENTENCE_OUTLIER: %s: %d sentences / %d paragraphs (ratio %.2f, median %.2f)\n",
				fr.path, fr.sentences, fr.paragraphs, fr.ratio, med)
		}
	}
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reprocessed string) (pos int, got, want byte) {
	n := min(len(original), len(reprocessed))
	for i := 0; i < n; i++ {
		if original[i] != reprocessed[i] {
			return i, reprocessed[i], original[i]
		}
	}
	pos = n
	if pos < len(reprocessed) {
		got = reprocessed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Files skipped:           %d\n", stats.filesSkipped)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Stable on second pass:   %d\n", stats.stableOK)
	fmt.Printf("Unstable on second pass: %d\n", stats.stableFail)
	fmt.Printf("Sentence outliers:       %d\n", stats.sentenceOutliers)
	fmt.Println()

	totalRunes := 0
	for _, count := range stats.runeClassCounts {
		totalRunes += count
	}

	fmt.Println("Rune class distribution:")
	printRuneClassStats("Consonant", classConsonant, stats.runeClassCounts, totalRunes)
	printRuneClassStats("Vowel", classVowel, stats.runeClassCounts, totalRunes)
	printRuneClassStats("Vowel sign", classVowelSign, stats.runeClassCounts, totalRunes)
	printRuneClassStats("Halanta", classHalanta, stats.runeClassCounts, totalRunes)
	printRuneClassStats("Digit", classDigit, stats.runeClassCounts, totalRunes)
	printRuneClassStats("In-block other", classOtherInBlock, stats.runeClassCounts, totalRunes)
	printRuneClassStats("ASCII", classASCII, stats.runeClassCounts, totalRunes)
	printRuneClassStats("Other", classOther, stats.runeClassCounts, totalRunes)
}

func printRuneClassStats(label string, class runeClass, counts map[runeClass]int, total int) {
	count := counts[class]
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-15s %d  (%.1f%%)\n", label+":", count, percentage)
}
