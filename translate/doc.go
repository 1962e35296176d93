// Package translate is a client for the Baidu Fanyi general translation
// API.
//
// A Client is created once with the caller's API credentials and reused:
//
//	client := translate.New(appID, appKey)
//	result, err := client.Translate(ctx, translate.Request{
//	    Query: "Hello, world",
//	    From:  "auto",
//	    To:    "zh",
//	})
//	for _, row := range result.Rows {
//	    fmt.Println(row.Dst, row.Src)
//	}
//
// Each request is signed with an MD5 digest of the app id, query, a random
// salt, and the app key, per the API's authentication scheme. API-level
// failures (bad sign, rate limits, unsupported languages) are reported as
// typed errors; see the package sentinels and IsRetryable.
//
// Inputs larger than MaxQueryBytes cannot be sent in one request. Use
// TranslateText, which splits long input on line boundaries and stitches
// the per-block results back together in order.
package translate
