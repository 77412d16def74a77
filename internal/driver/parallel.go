package driver

import (
	"bytes"
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"jackal/internal/diag"
	"jackal/internal/diagfmt"
	"jackal/internal/project"
	"jackal/internal/source"
)

// AnalyzeOptions configures a batch run.
type AnalyzeOptions struct {
	// Config supplies the source extension, artifact placement, job limit.
	Config project.Config
	// MaxDiagnostics bounds each file's bag.
	MaxDiagnostics int
	// EmitTokens also writes the token-stream artifact per file.
	EmitTokens bool
	// Cache is the optional artifact cache; nil disables caching.
	Cache *DiskCache
}

// AnalyzeFileResult is the per-file outcome of a batch run.
type AnalyzeFileResult struct {
	Path       string
	Bag        *diag.Bag
	TreePath   string // written artifact; empty when the parse failed
	TokensPath string
	FromCache  bool
}

// AnalyzeAll analyzes path (one source file or a directory of them),
// writing one artifact per input file. Files are processed in parallel;
// an artifact is only written after its file parsed completely, so a
// failed parse leaves no partial output behind.
func AnalyzeAll(ctx context.Context, path string, opts AnalyzeOptions) (*source.FileSet, []AnalyzeFileResult, error) {
	cfg := opts.Config
	files, err := ListSourceFiles(path, cfg.SourceExt)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Preload sequentially: the FileSet is not safe for concurrent mutation.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, p := range files {
		id, err := fileSet.Load(p)
		if err != nil {
			loadErrors[p] = err
			continue
		}
		fileIDs[p] = id
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]AnalyzeFileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, p := range files {
		i, p := i, p
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			if loadErr, ok := loadErrors[p]; ok {
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFile,
					Path:     p,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = AnalyzeFileResult{Path: p, Bag: bag}
				return nil
			}

			// Each index is unique to its goroutine; no mutex needed.
			results[i] = analyzeOne(fileSet.Get(fileIDs[p]), bag, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// analyzeOne runs the front-end over one loaded file and writes its
// artifacts. Cached outcomes are replayed without re-parsing.
func analyzeOne(file *source.File, bag *diag.Bag, opts AnalyzeOptions) AnalyzeFileResult {
	cfg := opts.Config
	res := AnalyzeFileResult{Path: file.Path, Bag: bag}
	treePath := artifactPath(file.Path, cfg.SourceExt, "", cfg.OutDir)
	tokensPath := artifactPath(file.Path, cfg.SourceExt, cfg.TokenSuffix, cfg.OutDir)

	var payload DiskPayload
	if hit, err := opts.Cache.Get(Digest(file.Hash), &payload); err == nil && hit {
		if writeArtifact(treePath, payload.TreeXML, bag) {
			res.TreePath = treePath
		}
		if opts.EmitTokens && writeArtifact(tokensPath, payload.TokensXML, bag) {
			res.TokensPath = tokensPath
		}
		res.FromCache = true
		return res
	}

	tokens := tokenizeFile(file, bag)
	if bag.HasErrors() {
		return res
	}
	tree := parseFile(file, bag)
	if tree == nil || bag.HasErrors() {
		return res
	}

	var treeXML, tokensXML bytes.Buffer
	if err := diagfmt.WriteTree(&treeXML, tree); err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOWriteFile,
			Path:     file.Path,
			Message:  "failed to render parse tree: " + err.Error(),
		})
		return res
	}
	if err := diagfmt.WriteTokens(&tokensXML, tokens); err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOWriteFile,
			Path:     file.Path,
			Message:  "failed to render tokens: " + err.Error(),
		})
		return res
	}

	if writeArtifact(treePath, treeXML.Bytes(), bag) {
		res.TreePath = treePath
	}
	if opts.EmitTokens && writeArtifact(tokensPath, tokensXML.Bytes(), bag) {
		res.TokensPath = tokensPath
	}

	if opts.Cache != nil {
		payload := DiskPayload{
			Schema:    diskCacheSchemaVersion,
			Path:      file.Path,
			TreeXML:   treeXML.Bytes(),
			TokensXML: tokensXML.Bytes(),
		}
		// Best effort: a cold cache next run is not an error.
		_ = opts.Cache.Put(Digest(file.Hash), &payload)
	}
	return res
}

func writeArtifact(path string, content []byte, bag *diag.Bag) bool {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOWriteFile,
			Path:     path,
			Message:  "failed to write artifact: " + err.Error(),
		})
		return false
	}
	return true
}
