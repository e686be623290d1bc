// Package httpapi exposes the puzzle solver over HTTP with the wire contract
// the board frontends consume.
//
// What:
//
//   - POST /solve accepts {"board": <tiles>, "difficulty": "<label>"} where
//     the board is either a flat array of tile values or an array of rows,
//     and answers {"solution_steps": [...]} with one entry per press.
//   - Every solve failure (unknown difficulty, wrong board length, an
//     unsolvable system) answers 200 with {"solution_steps": null}; the
//     distinction is kept in the server log, not on the wire.
//   - Malformed JSON answers 400; non-POST methods answer 405.
//
// Middleware:
//
//   - CORS stamps permissive cross-origin headers on every response and
//     short-circuits OPTIONS preflights, matching the allow-all policy the
//     frontends rely on.
//   - RequestLogger tags each request with a generated id (returned as
//     X-Request-Id) and logs method, path, status, bytes and duration.
//
// Wiring:
//
//	handler := httpapi.NewHandler(lightsout.New(), log)
//	mux := http.NewServeMux()
//	handler.Register(mux)
//	srv := httpapi.CORS(httpapi.RequestLogger(log, mux))
package httpapi
