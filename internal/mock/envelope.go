// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mock

// NetworkStatus mirrors the network-status codes an Apollo-style GraphQL
// client attaches to query results. Emulated calls never wait, so
// registered envelopes are almost always NetworkStatusReady.
type NetworkStatus int

// Network status codes, in the order the Apollo client defines them.
const (
	NetworkStatusLoading      NetworkStatus = 1
	NetworkStatusSetVariables NetworkStatus = 2
	NetworkStatusFetchMore    NetworkStatus = 3
	NetworkStatusRefetch      NetworkStatus = 4
	NetworkStatusPoll         NetworkStatus = 6
	NetworkStatusReady        NetworkStatus = 7
	NetworkStatusError        NetworkStatus = 8
)

// Envelope is the result wrapper for emulated query and mutation calls.
// Data carries the canned payload; the remaining fields reproduce the
// client-side result flags a real query result would carry.
type Envelope struct {
	Data          any           `json:"data"`
	Loading       bool          `json:"loading"`
	Stale         bool          `json:"stale"`
	NetworkStatus NetworkStatus `json:"networkStatus"`
}

// Ready wraps data in a settled, successful envelope.
func Ready(data any) Envelope {
	return Envelope{Data: data, NetworkStatus: NetworkStatusReady}
}
