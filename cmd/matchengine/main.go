package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"match-engine-go/internal/config"
	"match-engine-go/internal/embedding"
	"match-engine-go/internal/logger"
	"match-engine-go/internal/matcher"
	"match-engine-go/internal/processor"
	"match-engine-go/internal/types"
)

// Batch matching runner: loads candidate and job profiles from YAML
// fixtures, optionally attaches precomputed embeddings, and matches either
// the full cross product or every candidate against one job.

var (
	configPath     string
	candidatesPath string
	jobsPath       string
	embeddingsPath string
	rankJobID      string
	topK           int
	concurrency    int
	jsonOutput     bool
	samplePath     string
)

func main() {
	// A .env file is optional; ignore its absence.
	_ = godotenv.Load()

	pflag.StringVarP(&configPath, "config", "c", "", "Path to config file (default: search config.yaml)")
	pflag.StringVar(&candidatesPath, "candidates", "candidates.yaml", "Path to the candidate profiles fixture")
	pflag.StringVar(&jobsPath, "jobs", "jobs.yaml", "Path to the job profiles fixture")
	pflag.StringVar(&embeddingsPath, "embeddings", "", "Optional path to a precomputed embeddings fixture")
	pflag.StringVar(&rankJobID, "rank-job", "", "Rank all candidates against this job ID instead of matching the full cross product")
	pflag.IntVar(&topK, "top", 0, "Keep only the top N results per ranking (0 = all)")
	pflag.IntVar(&concurrency, "concurrency", 0, "Worker fan-out limit (0 = use config)")
	pflag.BoolVar(&jsonOutput, "json", false, "Emit one JSON match result per line")
	pflag.StringVar(&samplePath, "write-sample-config", "", "Write a sample config file to this path and exit")
	pflag.Parse()

	if samplePath != "" {
		if err := config.CreateSampleConfig(samplePath); err != nil {
			fmt.Fprintf(os.Stderr, "write sample config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("sample config written to %s\n", samplePath)
		return
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Fatal().Err(err).Msg("match run failed")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	candidates, err := loadCandidates(candidatesPath)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(jobsPath)
	if err != nil {
		return err
	}
	logger.Info().
		Int("candidates", len(candidates)).
		Int("jobs", len(jobs)).
		Msg("profiles loaded")

	if embeddingsPath != "" {
		provider, err := embedding.LoadStaticProvider(embeddingsPath)
		if err != nil {
			return err
		}
		attachEmbeddings(ctx, provider, candidates)
		attachEmbeddings(ctx, provider, jobs)
	}

	orchestrator, err := processor.NewMatchOrchestrator(
		processor.WithWeights(cfg.Engine.Weights),
		processor.WithSynonyms(cfg.Engine.Synonyms),
		processor.WithDimensions(cfg.Engine.Dimensions),
		processor.WithLogger(logger.Logger),
	)
	if err != nil {
		return err
	}

	workers := concurrency
	if workers <= 0 {
		workers = cfg.Engine.Concurrency
	}

	if rankJobID != "" {
		job, ok := findProfile(jobs, rankJobID)
		if !ok {
			return fmt.Errorf("job %q not found in %s", rankJobID, jobsPath)
		}
		results, err := orchestrator.RankCandidates(ctx, candidates, job, workers, topK)
		if printErr := printResults(results); printErr != nil {
			return printErr
		}
		return err
	}

	requests := make([]processor.MatchRequest, 0, len(candidates)*len(jobs))
	for _, job := range jobs {
		for _, candidate := range candidates {
			requests = append(requests, processor.MatchRequest{Candidate: candidate, Job: job})
		}
	}
	results, err := orchestrator.BatchMatch(ctx, requests, workers)
	if printErr := printResults(results); printErr != nil {
		return printErr
	}
	return err
}

// candidateDoc is the candidate fixture schema.
type candidateDoc struct {
	ID              string    `yaml:"id"`
	TechnicalSkills []string  `yaml:"technical_skills"`
	SoftSkills      []string  `yaml:"soft_skills"`
	ExperienceYears float64   `yaml:"experience_years"`
	EducationLevel  string    `yaml:"education_level"`
	Embedding       []float64 `yaml:"embedding"`
}

// jobDoc is the job fixture schema, named after the posting side of the
// comparison.
type jobDoc struct {
	ID                      string    `yaml:"id"`
	RequiredSkills          []string  `yaml:"required_skills"`
	RequiredSoftSkills      []string  `yaml:"required_soft_skills"`
	RequiredExperienceYears float64   `yaml:"required_experience_years"`
	RequiredEducation       string    `yaml:"required_education"`
	Embedding               []float64 `yaml:"embedding"`
}

func loadCandidates(path string) ([]types.Profile, error) {
	var docs []candidateDoc
	if err := readYAML(path, &docs); err != nil {
		return nil, err
	}
	profiles := make([]types.Profile, 0, len(docs))
	for _, doc := range docs {
		level, ok := types.ParseEducationLevel(doc.EducationLevel)
		if !ok {
			logger.Warn().Str("candidate_id", doc.ID).Str("education_level", doc.EducationLevel).
				Msg("unrecognized education level, treating as none")
		}
		profiles = append(profiles, types.Profile{
			ID:              doc.ID,
			TechnicalSkills: doc.TechnicalSkills,
			SoftSkills:      doc.SoftSkills,
			ExperienceYears: doc.ExperienceYears,
			Education:       level,
			Embedding:       doc.Embedding,
		})
	}
	return profiles, nil
}

func loadJobs(path string) ([]types.Profile, error) {
	var docs []jobDoc
	if err := readYAML(path, &docs); err != nil {
		return nil, err
	}
	profiles := make([]types.Profile, 0, len(docs))
	for _, doc := range docs {
		level, ok := types.ParseEducationLevel(doc.RequiredEducation)
		if !ok {
			logger.Warn().Str("job_id", doc.ID).Str("required_education", doc.RequiredEducation).
				Msg("unrecognized education requirement, treating as none")
		}
		profiles = append(profiles, types.Profile{
			ID:              doc.ID,
			TechnicalSkills: doc.RequiredSkills,
			SoftSkills:      doc.RequiredSoftSkills,
			ExperienceYears: doc.RequiredExperienceYears,
			Education:       level,
			Embedding:       doc.Embedding,
		})
	}
	return profiles, nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// attachEmbeddings fills missing vectors from the fixture provider, keyed by
// profile ID. A profile the provider cannot serve simply stays without an
// embedding and will surface as degraded similarity.
func attachEmbeddings(ctx context.Context, provider embedding.Provider, profiles []types.Profile) {
	for i := range profiles {
		if profiles[i].HasEmbedding() {
			continue
		}
		vector, err := provider.Embed(ctx, profiles[i].ID)
		if err != nil {
			if !errors.Is(err, embedding.ErrUnavailable) {
				logger.Warn().Err(err).Str("profile_id", profiles[i].ID).Msg("embedding lookup failed")
			}
			continue
		}
		profiles[i].Embedding = vector
	}
}

func findProfile(profiles []types.Profile, id string) (types.Profile, bool) {
	for _, p := range profiles {
		if p.ID == id {
			return p, true
		}
	}
	return types.Profile{}, false
}

func printResults(results []*types.MatchResult) error {
	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		for _, result := range results {
			if err := encoder.Encode(result); err != nil {
				return err
			}
		}
		return nil
	}
	for i, result := range results {
		fmt.Printf("%3d. candidate=%s job=%s score=%.2f band=%s\n",
			i+1, result.CandidateID, result.JobID,
			result.Breakdown.OverallScore, matcher.Band(result.Breakdown.OverallScore))
		fmt.Printf("     %s\n", result.Explanation)
		for _, s := range result.Strengths {
			fmt.Printf("     + %s\n", s)
		}
		for _, g := range result.Gaps {
			fmt.Printf("     - %s\n", g)
		}
		for _, r := range result.Recommendations {
			fmt.Printf("     > %s\n", r)
		}
	}
	return nil
}
