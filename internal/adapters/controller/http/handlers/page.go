package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// FormPage serves the generator form.
func (h *Handler) FormPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(formPageHTML))
}

const formPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>QR Forms</title>
    <style>
        * { box-sizing: border-box; margin: 0; padding: 0; }

        :root {
            --bg: #f5f5f7;
            --panel: #ffffff;
            --text: #1c1c1e;
            --muted: #6e6e73;
            --accent: #0a84ff;
            --border: #d2d2d7;
        }
        body.dark {
            --bg: #1c1c1e;
            --panel: #2c2c2e;
            --text: #f5f5f7;
            --muted: #98989d;
            --accent: #64b5ff;
            --border: #3a3a3c;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            min-height: 100vh;
            display: flex;
            align-items: flex-start;
            justify-content: center;
            padding: 32px 16px;
        }
        .container {
            background: var(--panel);
            border-radius: 16px;
            box-shadow: 0 8px 30px rgba(0, 0, 0, 0.12);
            padding: 32px;
            max-width: 640px;
            width: 100%;
        }
        h1 { font-size: 22px; margin-bottom: 4px; }
        .subtitle { color: var(--muted); font-size: 14px; margin-bottom: 24px; }
        .topbar { display: flex; justify-content: space-between; align-items: center; }
        .theme-toggle {
            border: 1px solid var(--border);
            background: none;
            color: var(--text);
            border-radius: 8px;
            padding: 6px 12px;
            cursor: pointer;
        }
        .tabs { display: flex; gap: 8px; margin-bottom: 20px; }
        .tabs button {
            flex: 1;
            padding: 10px;
            border: 1px solid var(--border);
            border-radius: 8px;
            background: none;
            color: var(--text);
            cursor: pointer;
        }
        .tabs button.active { background: var(--accent); border-color: var(--accent); color: #fff; }
        fieldset { border: none; margin-bottom: 16px; }
        .group { display: none; }
        .group.active { display: block; }
        label { display: block; font-size: 13px; color: var(--muted); margin: 10px 0 4px; }
        input, select {
            width: 100%;
            padding: 9px 10px;
            border: 1px solid var(--border);
            border-radius: 8px;
            background: var(--bg);
            color: var(--text);
        }
        .row { display: flex; gap: 12px; }
        .row > div { flex: 1; }
        details { margin: 16px 0; }
        summary { cursor: pointer; color: var(--muted); font-size: 14px; }
        .submit {
            width: 100%;
            padding: 12px;
            margin-top: 8px;
            border: none;
            border-radius: 8px;
            background: var(--accent);
            color: #fff;
            font-size: 16px;
            cursor: pointer;
        }
        .result { text-align: center; margin-top: 24px; }
        .result img { max-width: 320px; border-radius: 8px; }
        .error { color: #ff453a; font-size: 14px; margin-top: 12px; text-align: center; }
    </style>
</head>
<body>
<div class="container">
    <div class="topbar">
        <div>
            <h1>QR Forms</h1>
            <div class="subtitle">Text, WiFi or contact card &mdash; styled on the server</div>
        </div>
        <button class="theme-toggle" id="themeToggle">Dark</button>
    </div>

    <div class="tabs">
        <button type="button" data-kind="text" class="active">Text / URL</button>
        <button type="button" data-kind="wifi">WiFi</button>
        <button type="button" data-kind="vcard">Contact</button>
    </div>

    <form id="qrForm">
        <fieldset class="group active" data-group="text">
            <label for="text">Text or URL</label>
            <input type="text" name="text" id="text" placeholder="https://example.com">
        </fieldset>

        <fieldset class="group" data-group="wifi">
            <label for="ssid">Network name (SSID)</label>
            <input type="text" name="ssid" id="ssid" maxlength="32">
            <div class="row">
                <div>
                    <label for="auth">Security</label>
                    <select name="auth" id="auth">
                        <option value="WPA">WPA/WPA2</option>
                        <option value="WEP">WEP</option>
                        <option value="nopass">None</option>
                    </select>
                </div>
                <div>
                    <label for="password">Password</label>
                    <input type="password" name="password" id="password" maxlength="63">
                </div>
            </div>
            <label><input type="checkbox" name="hidden" value="true" style="width:auto"> Hidden network</label>
        </fieldset>

        <fieldset class="group" data-group="vcard">
            <div class="row">
                <div><label for="first_name">First name</label><input type="text" name="first_name" id="first_name"></div>
                <div><label for="last_name">Last name</label><input type="text" name="last_name" id="last_name"></div>
            </div>
            <div class="row">
                <div><label for="org">Organization</label><input type="text" name="org" id="org"></div>
                <div><label for="title">Title</label><input type="text" name="title" id="title"></div>
            </div>
            <div class="row">
                <div><label for="phone">Phone</label><input type="tel" name="phone" id="phone"></div>
                <div><label for="email">Email</label><input type="email" name="email" id="email"></div>
            </div>
            <label for="url">Website</label>
            <input type="url" name="url" id="url">
            <div class="row">
                <div><label for="street">Street</label><input type="text" name="street" id="street"></div>
                <div><label for="city">City</label><input type="text" name="city" id="city"></div>
            </div>
            <div class="row">
                <div><label for="zip">ZIP</label><input type="text" name="zip" id="zip"></div>
                <div><label for="country">Country</label><input type="text" name="country" id="country"></div>
            </div>
        </fieldset>

        <details>
            <summary>Style options</summary>
            <div class="row">
                <div>
                    <label for="level">Error correction</label>
                    <select name="level" id="level">
                        <option value="L">L (7%)</option>
                        <option value="M" selected>M (15%)</option>
                        <option value="Q">Q (25%)</option>
                        <option value="H">H (30%)</option>
                    </select>
                </div>
                <div>
                    <label for="size">Size (px)</label>
                    <input type="number" name="size" id="size" min="64" max="2048" value="512">
                </div>
                <div>
                    <label for="quiet_zone">Quiet zone (px)</label>
                    <input type="number" name="quiet_zone" id="quiet_zone" min="0" max="64" value="16">
                </div>
            </div>
            <div class="row">
                <div><label for="foreground">Foreground</label><input type="color" name="foreground" id="foreground" value="#141414"></div>
                <div><label for="background">Background</label><input type="color" name="background" id="background" value="#fafafa"></div>
                <div>
                    <label for="format">Format</label>
                    <select name="format" id="format">
                        <option value="png" selected>PNG</option>
                        <option value="svg">SVG</option>
                    </select>
                </div>
            </div>
            <label for="logo">Center logo (PNG/JPEG, raster output only)</label>
            <input type="file" name="logo" id="logo" accept="image/png,image/jpeg">
        </details>

        <button type="submit" class="submit">Generate</button>
    </form>

    <div class="result" id="result"></div>
    <div class="error" id="error"></div>
</div>

<script>
    let kind = 'text';

    document.querySelectorAll('.tabs button').forEach(function (btn) {
        btn.addEventListener('click', function () {
            kind = btn.dataset.kind;
            document.querySelectorAll('.tabs button').forEach(function (b) { b.classList.toggle('active', b === btn); });
            document.querySelectorAll('.group').forEach(function (g) {
                g.classList.toggle('active', g.dataset.group === kind);
            });
        });
    });

    // Open networks have no password field to fill.
    document.getElementById('auth').addEventListener('change', function () {
        document.getElementById('password').disabled = this.value === 'nopass';
    });

    const toggle = document.getElementById('themeToggle');

    function applyTheme(theme) {
        document.body.classList.toggle('dark', theme === 'dark');
        toggle.textContent = theme === 'dark' ? 'Light' : 'Dark';
    }

    fetch('/api/v1/theme').then(function (r) { return r.json(); }).then(function (d) { applyTheme(d.theme); });

    toggle.addEventListener('click', function () {
        const next = document.body.classList.contains('dark') ? 'light' : 'dark';
        applyTheme(next);
        fetch('/api/v1/theme', {
            method: 'PUT',
            headers: { 'Content-Type': 'application/json' },
            body: JSON.stringify({ theme: next })
        });
    });

    document.getElementById('qrForm').addEventListener('submit', function (e) {
        e.preventDefault();
        const errBox = document.getElementById('error');
        const result = document.getElementById('result');
        errBox.textContent = '';
        result.innerHTML = '';

        const data = new FormData(e.target);
        fetch('/api/v1/codes/' + kind, { method: 'POST', body: data })
            .then(function (r) { return r.json().then(function (d) { return { ok: r.ok, body: d }; }); })
            .then(function (res) {
                if (!res.ok) {
                    errBox.textContent = (res.body.field ? res.body.field + ': ' : '') + res.body.error;
                    return;
                }
                const img = document.createElement('img');
                img.src = res.body.href;
                img.alt = 'Generated code';
                result.appendChild(img);
                const link = document.createElement('a');
                link.href = res.body.href;
                link.download = 'qr.' + res.body.format;
                link.textContent = 'Download ' + res.body.format.toUpperCase();
                link.style.display = 'block';
                link.style.marginTop = '8px';
                result.appendChild(link);
            })
            .catch(function () { errBox.textContent = 'request failed'; });
    });
</script>
</body>
</html>
`
