package gencommon

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	CacheFileName = ".fakegraph_cache.json"
	cacheVersion  = "1"
)

// GenerationCache remembers the fingerprint of the inputs behind the last
// generated output so unchanged inputs can be skipped.
type GenerationCache struct {
	Version        string    `json:"version"`
	Fingerprint    string    `json:"fingerprint"` // schema + config hash
	OutputPath     string    `json:"output_path"`
	LastGeneration time.Time `json:"last_generation"`

	path string
	mu   sync.RWMutex
}

// NewGenerationCache returns the cache stored in dir, or an empty one when
// none exists or the stored one is unreadable.
func NewGenerationCache(dir string) *GenerationCache {
	cache := &GenerationCache{
		Version: cacheVersion,
		path:    filepath.Join(dir, CacheFileName),
	}
	if err := cache.Load(); err != nil {
		cache.Clear()
	}
	return cache
}

// ComputeFileChecksum computes SHA256 hash of a file
func ComputeFileChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// ComputeFingerprint hashes the schema file checksum together with the
// settings that shape the output. settings is JSON encoded, so map keys hash
// in sorted order.
func ComputeFingerprint(schemaPath string, settings any) (string, error) {
	checksum, err := ComputeFileChecksum(schemaPath)
	if err != nil {
		return "", err
	}
	encoded, err := json.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("failed to encode settings: %w", err)
	}

	hash := sha256.New()
	hash.Write([]byte(checksum))
	hash.Write([]byte{0})
	hash.Write(encoded)
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// Changed reports whether fingerprint differs from the one recorded for
// outputPath, or the output no longer exists.
func (c *GenerationCache) Changed(fingerprint, outputPath string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Fingerprint != fingerprint || c.OutputPath != outputPath {
		return true
	}
	if _, err := os.Stat(outputPath); err != nil {
		return true
	}
	return false
}

// Update records a successful generation.
func (c *GenerationCache) Update(fingerprint, outputPath string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Fingerprint = fingerprint
	c.OutputPath = outputPath
	c.LastGeneration = time.Now()
}

// Save persists the cache to disk
func (c *GenerationCache) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0644)
}

// Load reads the cache from disk
func (c *GenerationCache) Load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No cache file yet
		}
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := json.Unmarshal(data, c); err != nil {
		return err
	}

	if c.Version != cacheVersion {
		c.Fingerprint = ""
		c.OutputPath = ""
		c.LastGeneration = time.Time{}
		c.Version = cacheVersion
	}

	return nil
}

// Clear removes all cache data
func (c *GenerationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Version = cacheVersion
	c.Fingerprint = ""
	c.OutputPath = ""
	c.LastGeneration = time.Time{}
}
