// Package supabase is a client for Supabase, composing the
// supabase-community service clients behind one configuration surface.
//
// Database queries go through postgrest-go, realtime subscriptions through
// realtime-go, auth through gotrue-go, storage through storage-go and edge
// functions through functions-go. This package adds configuration,
// construction, credential header injection and per-user client derivation;
// query and channel semantics belong to the wrapped clients.
//
// Quick start:
//
//	client, err := supabase.NewClient(
//		"https://your-project.supabase.co",
//		"your-anon-key",
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	data, _, err := client.From("users").
//		Select("id, name, email", "", false).
//		Eq("active", "true").
//		Execute()
//
// For advanced configuration use NewConfig:
//
//	cfg, err := supabase.NewConfig(url, key)
//	if err != nil {
//		log.Fatal(err)
//	}
//	cfg.WithSchema("tenant1").
//		WithTimeout(60 * time.Second).
//		WithHeader("X-Custom-Header", "value")
//	client, err := supabase.NewClientWithConfig(cfg)
//
// After a user signs in, derive a client that issues requests as that user.
// Row level security policies then apply to the user's token while the apikey
// header keeps identifying the project:
//
//	session, err := client.SignInWithEmailPassword(email, password)
//	if err != nil {
//		log.Fatal(err)
//	}
//	userClient, err := client.WithJWT(session.AccessToken)
package supabase

// Version is the SDK version sent in the X-Client-Info header.
const Version = "0.1.0"
