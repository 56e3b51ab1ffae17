// Package assets provides the Beamer template sets and theme logos used to
// assemble a presentation.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (default template set)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in "default" template set, compiled into
// the binary. It carries no logos; missing logos are synthesized by the caller.
//
// FilesystemLoader allows users to provide custom assets from a directory,
// with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the generator. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the asset is not
// found. A dedicated logo directory, when configured, is searched before the
// custom base path.
//
// # Directory Structure
//
//	{basePath}/
//	├── logos/
//	│   └── {file}                     # e.g. cu_logo.png
//	└── templates/
//	    └── {name}/
//	        ├── presentation.tex        # Beamer document with {{TOKENS}}
//	        ├── compile_presentation.sh
//	        └── compile_presentation.bat
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
