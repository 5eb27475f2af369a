// Package pkg provides the core libraries for assetgraft.
//
// # Overview
//
// Assetgraft edits the object graph of cooked game packages: a name table,
// a list of imports and a list of exports whose payloads are property
// trees. The pkg directory is organized into these areas:
//
//  1. [asset] - The graph model (names, reference indices, properties)
//  2. [edit] - In-place edits (imports, actors, property values)
//  3. [transplant] - Copying an actor and its dependencies between graphs
//  4. [codec] - Reading and writing packages
//  5. [plan] - Edit plans from flags, TOML or YAML
//  6. [pipeline] - Orchestration (load → edit → transplant → save)
//  7. [render] - Text, JSON and Graphviz dumps
//
// # Architecture
//
// The typical data flow:
//
//	Package files (container + payload)
//	         ↓
//	    [codec] package (decode into an asset.Graph)
//	         ↓
//	    [edit] and [transplant] packages (mutate the graph)
//	         ↓
//	    [codec] package (validate and encode)
//	         ↓
//	Package files
//
// # Quick Start
//
//	g, _ := codec.Load("Arena.umap")
//	edit.DisableImport(g, "Default__StaticMeshActor")
//	_, _ = edit.EditProperty(g, "2.RelativeLocation.RelativeLocation=0,0,100")
//
//	donor, _ := codec.Load("Lobby.umap")
//	t, _ := transplant.New(donor, g, nil)
//	_, _ = t.Transplant(asset.FromRaw(3))
//
//	_ = codec.Save(g, "Arena_Mod.umap")
//
// # Error Handling
//
// Every package reports failures through [errors] codes so callers can
// decide what is recoverable; see [errors.Recoverable].
//
// [asset]: github.com/matzehuels/assetgraft/pkg/asset
// [edit]: github.com/matzehuels/assetgraft/pkg/edit
// [transplant]: github.com/matzehuels/assetgraft/pkg/transplant
// [codec]: github.com/matzehuels/assetgraft/pkg/codec
// [plan]: github.com/matzehuels/assetgraft/pkg/plan
// [pipeline]: github.com/matzehuels/assetgraft/pkg/pipeline
// [render]: github.com/matzehuels/assetgraft/pkg/render
// [errors]: github.com/matzehuels/assetgraft/pkg/errors
// [errors.Recoverable]: github.com/matzehuels/assetgraft/pkg/errors#Recoverable
package pkg
