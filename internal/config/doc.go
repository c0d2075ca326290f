// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

/*
Package config loads StreamRush configuration with koanf.

Sources are layered, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, else config.yaml / config.yml in the
    working directory, else /etc/streamrush/config.yaml
 3. Environment variables listed in envMappings

Example config.yaml:

	server:
	  port: 8080
	logging:
	  level: debug
	recommend:
	  default_limit: 15
	catalog:
	  path: /data/catalog
	nats:
	  enabled: true
	  url: nats://nats:4222
	security:
	  auth_mode: jwt
	  jwt_secret: change-me-to-at-least-32-characters

Environment variables use the flat names operators already know
(HTTP_PORT, LOG_LEVEL, JWT_SECRET, NATS_URL, CATALOG_PATH, ...). Unknown
variables are ignored. List values (CORS_ORIGINS) are comma-separated.

Load validates the result; a configuration that fails validation never
reaches the caller.
*/
package config
