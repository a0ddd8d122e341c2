package service

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/lukastechs/youtube-backend/internal/youtube"
)

var (
	// canonicalIDRe matches a canonical channel ID: the UC prefix followed
	// by 22 characters of the YouTube ID alphabet. Case-sensitive.
	canonicalIDRe = regexp.MustCompile(`^UC[0-9A-Za-z_-]{22}$`)
	// channelURLRe extracts a canonical ID embedded in a /channel/ URL.
	channelURLRe = regexp.MustCompile(`/channel/(UC[0-9A-Za-z_-]{22})`)
	// handleURLRe extracts the handle segment of a /c/ or /@ URL.
	handleURLRe = regexp.MustCompile(`/(?:c/|@)([^/?#]+)`)
)

// matched is the outcome of one matcher: either a canonical ID (resolution
// complete) or a handle still needing an upstream lookup.
type matched struct {
	channelID string
	handle    string
}

type matcher struct {
	name    string
	extract func(input string) (matched, bool)
}

// ResolverService turns raw user input (canonical ID, channel URL, or handle)
// into a canonical channel ID. Matchers run in fixed priority order; the
// first match wins. Only handle forms cost an upstream lookup.
type ResolverService struct {
	api      youtube.API
	matchers []matcher
}

func NewResolverService(api youtube.API) *ResolverService {
	return &ResolverService{
		api: api,
		matchers: []matcher{
			{name: "canonical_id", extract: func(in string) (matched, bool) {
				if canonicalIDRe.MatchString(in) {
					return matched{channelID: in}, true
				}
				return matched{}, false
			}},
			{name: "channel_url", extract: func(in string) (matched, bool) {
				if m := channelURLRe.FindStringSubmatch(in); m != nil {
					return matched{channelID: m[1]}, true
				}
				return matched{}, false
			}},
			{name: "handle_url", extract: func(in string) (matched, bool) {
				if !strings.Contains(in, "/") {
					return matched{}, false
				}
				if m := handleURLRe.FindStringSubmatch(in); m != nil {
					return matched{handle: m[1]}, true
				}
				return matched{}, false
			}},
			{name: "bare_handle", extract: func(in string) (matched, bool) {
				// Loosest form: any remaining token, with or without
				// a leading @, is treated as a handle.
				return matched{handle: strings.TrimPrefix(in, "@")}, true
			}},
		},
	}
}

// Resolve parses raw input into a canonical channel ID. Handle forms issue
// exactly one search call; a handle with no results and a failed search both
// yield ErrInvalidInput so the caller maps them uniformly.
func (s *ResolverService) Resolve(ctx context.Context, raw string) (string, error) {
	input := strings.TrimSpace(raw)
	if strings.Contains(input, "%") {
		decoded, err := url.QueryUnescape(input)
		if err != nil {
			return "", ErrInvalidInput
		}
		input = strings.TrimSpace(decoded)
	}
	if input == "" {
		return "", ErrInvalidInput
	}

	for _, m := range s.matchers {
		res, ok := m.extract(input)
		if !ok {
			continue
		}
		if res.channelID != "" {
			return res.channelID, nil
		}
		return s.lookupHandle(ctx, res.handle)
	}
	return "", ErrInvalidInput
}

func (s *ResolverService) lookupHandle(ctx context.Context, handle string) (string, error) {
	if handle == "" {
		return "", ErrInvalidInput
	}
	channelID, err := s.api.SearchChannelByHandle(ctx, handle)
	if err != nil || channelID == "" {
		return "", ErrInvalidInput
	}
	return channelID, nil
}
