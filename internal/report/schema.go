package report

// Schema is the JSON Schema (Draft 2020-12) for the resolution JSON
// output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/decoy/resolution-report.schema.json",
  "title": "Decoy Resolution Report",
  "description": "Output schema for decoy resolve --format=json",
  "type": "object",
  "required": ["version", "identities", "conflicts"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "package": {
      "type": "string",
      "description": "Import path of the processed package"
    },
    "identities": {
      "type": "array",
      "items": { "$ref": "#/$defs/Identity" }
    },
    "conflicts": {
      "type": "array",
      "items": { "$ref": "#/$defs/Conflict" }
    }
  },
  "$defs": {
    "Identity": {
      "type": "object",
      "required": ["name", "kind", "class", "contracts", "signatures"],
      "properties": {
        "name": {
          "type": "string",
          "description": "Canonical public name, unique within the unit"
        },
        "kind": {
          "type": "string",
          "enum": ["method", "property", "indexer", "event"]
        },
        "class": {
          "type": "string",
          "enum": ["plain", "overload_group", "generic", "indexer"],
          "description": "How the identity is wired at generation time"
        },
        "contracts": {
          "type": "array",
          "items": { "type": "string" },
          "description": "Declaring contracts the identity serves"
        },
        "signatures": {
          "type": "array",
          "minItems": 1,
          "items": { "$ref": "#/$defs/Signature" }
        }
      }
    },
    "Signature": {
      "type": "object",
      "required": ["key", "shape", "params"],
      "properties": {
        "key": {
          "type": "string",
          "pattern": "^sig-[0-9a-f]{8}$",
          "description": "Stable per-signature routing key"
        },
        "shape": {
          "type": "string",
          "description": "Human-readable call shape"
        },
        "params": {
          "type": "array",
          "items": { "type": "string" }
        },
        "returns": {
          "type": "string"
        },
        "type_params": {
          "type": "integer",
          "minimum": 0,
          "description": "Generic arity"
        }
      }
    },
    "Conflict": {
      "type": "object",
      "required": ["name", "reason", "contracts", "message"],
      "properties": {
        "name": { "type": "string" },
        "reason": {
          "type": "string",
          "enum": ["ambiguous_call", "kind_mismatch"]
        },
        "shape": { "type": "string" },
        "contracts": {
          "type": "array",
          "minItems": 2,
          "items": { "type": "string" }
        },
        "message": { "type": "string" }
      }
    }
  }
}`
