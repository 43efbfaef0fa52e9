package adapter

import "encoding/json"

// Marshal is indirected so tests can exercise serialization failures
var Marshal = json.Marshal
