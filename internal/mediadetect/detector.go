// Package mediadetect finds downloadable media candidates in bookmark
// content via local inspection only. An empty result is success.
package mediadetect

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"bookmark_enricher/internal/domain"
)

// Platform media markers. Twitter serves images from pbs.twimg.com and
// video from video.twimg.com; LinkedIn serves post assets from
// media.licdn.com and dms.licdn.com.
var (
	twitterImagePattern  = regexp.MustCompile(`https://pbs\.twimg\.com/media/[A-Za-z0-9_\-]+(?:\?[^\s"'<>]*)?`)
	twitterVideoPattern  = regexp.MustCompile(`https://video\.twimg\.com/[^\s"'<>]+`)
	linkedinAssetPattern = regexp.MustCompile(`https://(?:media|dms)\.licdn\.com/[^\s"'<>]+`)
	genericMediaPattern  = regexp.MustCompile(`https?://[^\s"'<>]+\.(?:jpg|jpeg|png|gif|webp|mp4|webm|mov|mp3|m4a)(?:\?[^\s"'<>]*)?`)
)

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true, ".m3u8": true,
}

// Detector implements service.MediaDetector.
type Detector struct{}

func New() *Detector {
	return &Detector{}
}

// Detect scans content, the post URL and saved metadata for media
// candidates, deduplicated by source URL in discovery order.
func (d *Detector) Detect(content, postURL string, metadata map[string]string) []domain.MediaCandidate {
	var candidates []domain.MediaCandidate
	seen := make(map[string]bool)

	add := func(sourceURL string, typ domain.MediaType) {
		sourceURL = strings.TrimRight(sourceURL, ".,;)")
		if sourceURL == "" || seen[sourceURL] {
			return
		}
		seen[sourceURL] = true
		candidates = append(candidates, domain.MediaCandidate{Type: typ, SourceURL: sourceURL})
	}

	for _, m := range twitterImagePattern.FindAllString(content, -1) {
		add(m, domain.MediaTypeImage)
	}
	for _, m := range twitterVideoPattern.FindAllString(content, -1) {
		add(m, domain.MediaTypeVideo)
	}
	for _, m := range linkedinAssetPattern.FindAllString(content, -1) {
		add(m, classifyByExtension(m))
	}
	for _, m := range genericMediaPattern.FindAllString(content, -1) {
		add(m, classifyByExtension(m))
	}

	// Saved metadata may carry media URLs captured by the crawler at save
	// time (media_url, video_url, thumbnail_url keys).
	for key, value := range metadata {
		if !strings.HasSuffix(key, "_url") || !strings.HasPrefix(value, "http") {
			continue
		}
		add(value, MapPlatformType(metadata[strings.TrimSuffix(key, "_url")+"_type"], value))
	}

	// A bookmark whose own URL points straight at a media file.
	if typ := classifyByExtension(postURL); typ != domain.MediaTypeLink {
		add(postURL, typ)
	}

	return candidates
}

// MapPlatformType maps platform-reported media types to the application's
// media types: photo/image become IMAGE, video/animated_gif become VIDEO,
// anything else falls back to extension sniffing and finally LINK.
func MapPlatformType(platformType, sourceURL string) domain.MediaType {
	switch strings.ToLower(platformType) {
	case "photo", "image":
		return domain.MediaTypeImage
	case "video", "animated_gif":
		return domain.MediaTypeVideo
	}
	return classifyByExtension(sourceURL)
}

func classifyByExtension(rawURL string) domain.MediaType {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return domain.MediaTypeLink
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	switch {
	case imageExtensions[ext]:
		return domain.MediaTypeImage
	case videoExtensions[ext]:
		return domain.MediaTypeVideo
	}
	if strings.Contains(parsed.Host, "pbs.twimg.com") {
		return domain.MediaTypeImage
	}
	if strings.Contains(parsed.Host, "video.twimg.com") {
		return domain.MediaTypeVideo
	}
	return domain.MediaTypeLink
}
